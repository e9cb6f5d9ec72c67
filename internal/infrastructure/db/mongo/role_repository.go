package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/personal/inventory-api/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository reads the seeded role enumeration from MongoDB.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

type mongoRole struct {
	Name string `bson:"name"`
}

// FindByName returns the stored role with the given name. A missing role is
// a bootstrap defect, reported as domain.ErrRoleNotSeeded.
func (r *RoleRepository) FindByName(ctx context.Context, name string) (domain.Role, error) {
	var mr mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("%w: %s", domain.ErrRoleNotSeeded, name)
		}
		return "", fmt.Errorf("find role: %w", err)
	}
	return domain.Role(mr.Name), nil
}

// Seed upserts the full role enumeration and its unique name index. Called
// once at startup, before the first request.
func (r *RoleRepository) Seed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: uniqueIndex(),
	})
	if err != nil {
		return fmt.Errorf("create role index: %w", err)
	}

	for _, role := range domain.SeedRoles {
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"name": string(role)},
			bson.M{"$setOnInsert": mongoRole{Name: string(role)}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role, err)
		}
	}
	return nil
}

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
