package mongo

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var testDB *mongo.Database
var testClient *mongo.Client

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("failed to start mongodb container: %v", err)
	}

	endpoint, err := container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	clientOpts := options.Client().
		ApplyURI(endpoint).
		SetDirect(true).
		SetConnectTimeout(30 * time.Second).
		SetServerSelectionTimeout(30 * time.Second)

	testClient, err = mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}

	if err := testClient.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping mongodb: %v", err)
	}

	testDB = testClient.Database("test_db")

	code := m.Run()

	_ = testClient.Disconnect(ctx)
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func sampleProducts(t *testing.T) []domain.Product {
	t.Helper()

	expiry, err := time.Parse(domain.ExpiryDateFormat, "2099-12-31")
	if err != nil {
		t.Fatal(err)
	}

	electronics, err := domain.NewElectronics("E1", "Laptop", domain.NewAmountFromFloat(999.99), 5, 2, "X")
	if err != nil {
		t.Fatal(err)
	}
	grocery, err := domain.NewGrocery("G1", "Milk", domain.NewAmountFromFloat(3.50), 10, expiry)
	if err != nil {
		t.Fatal(err)
	}

	return []domain.Product{electronics, grocery}
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := NewSnapshotStore(testDB)
	ctx := context.Background()

	if err := store.Save(ctx, "round-trip", sampleProducts(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "round-trip")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 products, got %d", len(loaded))
	}

	electronics, ok := loaded[0].(*domain.Electronics)
	if !ok {
		t.Fatalf("expected *domain.Electronics, got %T", loaded[0])
	}
	if electronics.ID() != "E1" || electronics.WarrantyYears() != 2 || electronics.Brand() != "X" {
		t.Fatalf("electronics fields lost: %s", electronics.Describe())
	}

	grocery, ok := loaded[1].(*domain.Grocery)
	if !ok {
		t.Fatalf("expected *domain.Grocery, got %T", loaded[1])
	}
	if got := grocery.ExpiryDate().Format(domain.ExpiryDateFormat); got != "2099-12-31" {
		t.Fatalf("expected expiry 2099-12-31, got %s", got)
	}
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	store := NewSnapshotStore(testDB)
	ctx := context.Background()

	if err := store.Save(ctx, "overwrite", sampleProducts(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	clothing, err := domain.NewClothing("C1", "Shirt", domain.NewAmountFromFloat(19.90), 3, "M", "Cotton")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, "overwrite", []domain.Product{clothing}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "overwrite")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID() != "C1" {
		t.Fatalf("expected only C1 after overwrite, got %d products", len(loaded))
	}
}

func TestSnapshotStore_NamesAreIsolated(t *testing.T) {
	store := NewSnapshotStore(testDB)
	ctx := context.Background()

	if err := store.Save(ctx, "iso-a", sampleProducts(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, "iso-b", nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "iso-b")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected iso-b to be empty, got %d products", len(loaded))
	}
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store := NewSnapshotStore(testDB)

	loaded, err := store.Load(context.Background(), "never-saved")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty result, got %d products", len(loaded))
	}
}
