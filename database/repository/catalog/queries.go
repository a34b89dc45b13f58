package catalogRepo

import (
	"context"

	"festivo/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *mongoCatalogRepo) GetByVendorID(ctx context.Context, vendorID string) ([]models.Package, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"vendorId": vendorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}
