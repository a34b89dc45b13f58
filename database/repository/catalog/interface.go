package catalogRepo

import (
	"context"

	"festivo/database"
	"festivo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the read-only boundary to the vendor-managed package catalog.
// Writes happen in the vendor CRUD service, not here.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Package, error)
	GetByVendorID(ctx context.Context, vendorID string) ([]models.Package, error)
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a Repository backed by MongoDB.
func NewMongoCatalogRepo() Repository {
	return &mongoCatalogRepo{
		coll: database.DB().Collection("packages"),
	}
}
