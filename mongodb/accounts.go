// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package mongodb

import (
	"context"

	"github.com/evauth/akeys"
	"github.com/evauth/akeys/pkg/errors"
	repoerr "github.com/evauth/akeys/pkg/errors/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const accountsCollection string = "accounts"

type accountRepository struct {
	db *mongo.Database
}

var _ akeys.AccountRepository = (*accountRepository)(nil)

// NewAccountRepository instantiates a MongoDB implementation of account repository.
func NewAccountRepository(db *mongo.Database) akeys.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (ar *accountRepository) Save(ctx context.Context, acc akeys.Account) error {
	coll := ar.db.Collection(accountsCollection)

	if _, err := coll.InsertOne(ctx, acc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(repoerr.ErrConflict, err)
		}
		return errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return nil
}

func (ar *accountRepository) RetrieveByAKey(ctx context.Context, akey string) (akeys.Account, error) {
	coll := ar.db.Collection(accountsCollection)

	var acc akeys.Account
	filter := bson.D{{Key: "akey", Value: akey}}
	if err := coll.FindOne(ctx, filter).Decode(&acc); err != nil {
		if err == mongo.ErrNoDocuments {
			return akeys.Account{}, errors.Wrap(repoerr.ErrNotFound, err)
		}
		return akeys.Account{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return acc, nil
}
