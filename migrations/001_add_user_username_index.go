package migrations

import (
	"context"
	"log"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Usernames are unique per hospital, not globally.
func AddUserUsernameIndex() {
	ctx := context.Background()
	coll := db.DB.Collection(util.UserCollection)

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "hospitalId", Value: 1}, {Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("hospitalId_username_unique"),
	}
	name, err := coll.Indexes().CreateOne(ctx, index)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration applied: index", name)
}
