package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

/*
* Connect to mongo using MONGO_URI and DB_NAME from the env
* Ping once so a bad URI fails at startup instead of on first request
 */
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "medflow"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Error while connecting to mongo:", err)
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Error while pinging mongo:", err)
		return err
	}
	Client = client
	DB = client.Database(dbName)
	log.Println("Connected to mongo database:", dbName)
	return nil
}

func Disconnect() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Println("Error while disconnecting mongo:", err)
	}
}

func OpenCollections(name string) *mongo.Collection {
	return DB.Collection(name)
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter bson.M, result interface{}) error {
	return coll.FindOne(ctx, filter).Decode(result)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]map[string]interface{}, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []map[string]interface{}{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func CreateOne(ctx context.Context, coll *mongo.Collection, data interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, data)
}

func CreateMany(ctx context.Context, coll *mongo.Collection, docs []interface{}) (*mongo.InsertManyResult, error) {
	return coll.InsertMany(ctx, docs)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}

func DeleteMany(ctx context.Context, coll *mongo.Collection, filter bson.M) (*mongo.DeleteResult, error) {
	return coll.DeleteMany(ctx, filter)
}

func CountDocuments(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	return coll.CountDocuments(ctx, filter)
}

/*
* Atomically fetch the next value of a named counter using findOneAndUpdate
* with upsert, so code generation never hands out duplicates
 */
func NextSequence(ctx context.Context, name string) (int64, error) {
	coll := DB.Collection(util.CounterCollection)
	filter := bson.M{"_id": name}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		log.Println("Error from findOneAndUpdate for counter:", name, err)
		return 0, err
	}
	return doc.Seq, nil
}
