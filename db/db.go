package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductCollection *mongo.Collection
	OrderCollection   *mongo.Collection
	Client            *mongo.Client
)

// Init connects to MongoDB and binds the storefront collections. Called
// once from main before the server starts serving.
func Init(uri, database string) error {
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	if database == "" {
		database = "jossydb"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	ProductCollection = client.Database(database).Collection("products")
	OrderCollection = client.Database(database).Collection("orders")
	return nil
}

// Close disconnects the client. Used during graceful shutdown.
func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
