package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"amerportal/models"
)

const stateDocID = "portal-state"

// MongoStore keeps the portal document under a single fixed _id and replaces
// it wholesale on save, preserving the one-document read-modify-write model
// of the file backend.
type MongoStore struct {
	collection *mongo.Collection
}

type stateDocument struct {
	ID              string `bson:"_id"`
	models.Database `bson:",inline"`
}

func ConnectMongoStore() *MongoStore {
	client, err := mongo.NewClient(options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	return &MongoStore{collection: client.Database("amerportal").Collection("state")}
}

func (s *MongoStore) Load() models.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc stateDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("Could not read state document: %v", err)
		}
		return models.EmptyDatabase()
	}
	return doc.Database
}

func (s *MongoStore) Save(db models.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": stateDocID}, stateDocument{ID: stateDocID, Database: db}, opts)
	return err
}
