package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Manager struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewManager(ctx context.Context, uri, dbName string) (*Manager, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Successfully connected to the database")

	manager := &Manager{
		client: client,
		db:     client.Database(dbName),
	}

	if err := manager.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return manager, nil
}

// ensureIndexes creates the unique email index backing the one
// uniqueness constraint the data model has.
func (m *Manager) ensureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := m.db.Collection("adherents").Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to create adherent email index: %w", err)
	}

	return nil
}

func (m *Manager) Database() *mongo.Database {
	return m.db
}

func (m *Manager) Close(ctx context.Context) error {
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}
	return nil
}
