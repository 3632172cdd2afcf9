package product

import "go.mongodb.org/mongo-driver/bson"

// buildListFilter translates optional list parameters into a conjunctive
// Mongo filter. Category matches as a case-insensitive pattern, price bounds
// are inclusive and merge into a single price clause.
func buildListFilter(f ListFilter) bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = bson.M{"$regex": f.Category, "$options": "i"}
	}
	if f.MinPrice != nil {
		query["price"] = bson.M{"$gte": *f.MinPrice}
	}
	if f.MaxPrice != nil {
		if price, ok := query["price"].(bson.M); ok {
			price["$lte"] = *f.MaxPrice
		} else {
			query["price"] = bson.M{"$lte": *f.MaxPrice}
		}
	}
	return query
}

// buildSearchFilter matches q case-insensitively as a substring against
// name, description, category or sku.
func buildSearchFilter(q string) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"description": bson.M{"$regex": q, "$options": "i"}},
			{"category": bson.M{"$regex": q, "$options": "i"}},
			{"sku": bson.M{"$regex": q, "$options": "i"}},
		},
	}
}
