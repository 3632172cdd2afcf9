package product

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListFilter_Empty(t *testing.T) {
	got := buildListFilter(ListFilter{})
	if len(got) != 0 {
		t.Fatalf("expected empty filter, got %v", got)
	}
}

func TestBuildListFilter_CategoryIsCaseInsensitivePattern(t *testing.T) {
	got := buildListFilter(ListFilter{Category: "Tools"})
	want := bson.M{"category": bson.M{"$regex": "Tools", "$options": "i"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildListFilter_PriceBoundsMergeIntoOneClause(t *testing.T) {
	min, max := 10.0, 20.0

	got := buildListFilter(ListFilter{MinPrice: &min, MaxPrice: &max})
	want := bson.M{"price": bson.M{"$gte": 10.0, "$lte": 20.0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildListFilter_MaxPriceOnly(t *testing.T) {
	max := 20.0

	got := buildListFilter(ListFilter{MaxPrice: &max})
	want := bson.M{"price": bson.M{"$lte": 20.0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildSearchFilter_DisjunctionOverFourFields(t *testing.T) {
	got := buildSearchFilter("widget")
	want := bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": "widget", "$options": "i"}},
			{"description": bson.M{"$regex": "widget", "$options": "i"}},
			{"category": bson.M{"$regex": "widget", "$options": "i"}},
			{"sku": bson.M{"$regex": "widget", "$options": "i"}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
