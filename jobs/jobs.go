package jobs

import (
	"context"
	"log"
	"time"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily queue maintenance...")
		RunQueueMaintenance()
	})

	c.Start()
}

/*
* Token counters are keyed by date so they restart on their own; the sweep
* just clears out counter documents from previous days and parks patients
* whose tokens expired with them
 */
func RunQueueMaintenance() {
	ctx := context.Background()
	today := time.Now().Format("02-01-2006")

	counterColl := db.OpenCollections(util.QueueCounterCollection)
	result, err := db.DeleteMany(ctx, counterColl, bson.M{"date": bson.M{"$ne": today}})
	if err != nil {
		log.Println("Error while sweeping queue counters:", err)
	} else {
		log.Printf("Queue counter sweep removed %d documents\n", result.DeletedCount)
	}

	DeactivateStalePatients(ctx, today)
}

// Patients still sitting in a queue with yesterday's token are marked
// inactive so today's dashboards start clean.
func DeactivateStalePatients(ctx context.Context, today string) {
	patientColl := db.OpenCollections(util.PatientCollection)
	filter := bson.M{"tokenDate": bson.M{"$ne": today}, "isActive": true}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now(), "updatedBy": "scheduler"}}

	result, err := patientColl.UpdateMany(ctx, filter, update)
	if err != nil {
		log.Println("Error while deactivating stale patients:", err)
		return
	}
	log.Printf("Deactivated %d stale queue patients\n", result.ModifiedCount)
}
