package migrations

import (
	"context"
	"log"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"go.mongodb.org/mongo-driver/bson"
)

func BackfillSampleStatus() {
	ctx := context.Background()
	result, err := db.DB.Collection(util.LabTestCollection).UpdateMany(
		ctx,
		bson.M{"sampleStatus": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"sampleStatus": util.SamplePending}},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: %d documents updated\n", result.ModifiedCount)
}
