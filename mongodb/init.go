// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package mongodb contains the MongoDB implementation of the credential
// store. The akey unique index created here is the authoritative guard
// against duplicate registrations.
package mongodb

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/evauth/akeys/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	errConfig  = errors.New("failed to load mongodb configuration")
	errConnect = errors.New("failed to connect to mongodb server")
	errIndex   = errors.New("failed to create akey unique index")
)

// Config defines the options that are used when connecting to a MongoDB instance.
type Config struct {
	Host string `env:"HOST" envDefault:"localhost"`
	Port string `env:"PORT" envDefault:"27017"`
	Name string `env:"NAME" envDefault:"akeys"`
}

// Connect creates a connection to the MongoDB instance and guarantees the
// indexes the repository relies on.
func Connect(cfg Config) (*mongo.Database, error) {
	addr := fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(addr))
	if err != nil {
		return nil, errors.Wrap(errConnect, err)
	}

	db := client.Database(cfg.Name)
	if err := EnsureIndexes(context.Background(), db); err != nil {
		return nil, err
	}

	return db, nil
}

// Setup loads configuration from the environment, creates a new MongoDB
// client and connects to the MongoDB server.
func Setup(envPrefix string) (*mongo.Database, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, errors.Wrap(errConfig, err)
	}

	return Connect(cfg)
}

// EnsureIndexes creates the unique index on akey.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "akey", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(accountsCollection).Indexes().CreateOne(ctx, idx); err != nil {
		return errors.Wrap(errIndex, err)
	}

	return nil
}
