//go:build integration

package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	pg := &Postgres{Pool: testPool}
	if err := pg.Bootstrap(ctx); err != nil {
		fmt.Println("Bootstrap:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE accidents, ambulances, vehicles`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedRegistry(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := testPool.Exec(ctx, `
		INSERT INTO vehicles (vehicle_no, owner_name, owner_email, emergency_email1, emergency_email2)
		VALUES
			('TN01AB1234', 'Arun', 'arun@example.com', 'kin1@example.com', 'kin2@example.com'),
			('TN02CD5678', 'Priya', 'priya@example.com', NULL, NULL),
			('TN03EF9999', NULL, NULL, NULL, NULL)
	`)
	if err != nil {
		t.Fatalf("seed vehicles: %v", err)
	}

	_, err = testPool.Exec(ctx, `
		INSERT INTO ambulances (vehicle_no, email, lat, lng)
		VALUES
			('AMB-01', 'amb01@example.com', 12.97, 77.59),
			('AMB-02', NULL, 13.00, 77.60)
	`)
	if err != nil {
		t.Fatalf("seed ambulances: %v", err)
	}
}

func TestAccidentRepo_Create_SetsIDAndDefaults(t *testing.T) {

	truncateAll(t)
	seedRegistry(t)

	repo := NewAccidentRepo(testPool, testLogger())

	rec := &domain.AccidentRecord{
		AccVehicleNo: "TN01AB1234",
		AmbVehicleNo: "AMB-01",
		AccLocation:  domain.Coordinate{Lat: 12.98, Lng: 77.58},
		HospitalLoc:  domain.Coordinate{Lat: 13.00, Lng: 77.60},
	}

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rec.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
	if rec.Status != domain.AccidentPending {
		t.Fatalf("expected status=%s got=%s", domain.AccidentPending, rec.Status)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}
}

func TestAccidentRepo_Create_InvalidCoordinates(t *testing.T) {

	truncateAll(t)
	seedRegistry(t)

	repo := NewAccidentRepo(testPool, testLogger())

	rec := &domain.AccidentRecord{
		AccVehicleNo: "TN01AB1234",
		AmbVehicleNo: "AMB-01",
		AccLocation:  domain.Coordinate{Lat: 95, Lng: 77.58},
		HospitalLoc:  domain.Coordinate{Lat: 13.00, Lng: 77.60},
	}

	err := repo.Create(context.Background(), rec)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestAccidentRepo_ListPending_ExcludesResolved_InsertionOrder(t *testing.T) {

	truncateAll(t)
	seedRegistry(t)

	repo := NewAccidentRepo(testPool, testLogger())
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		rec := &domain.AccidentRecord{
			AccVehicleNo: "TN01AB1234",
			AmbVehicleNo: "AMB-01",
			AccLocation:  domain.Coordinate{Lat: 10 + float64(i), Lng: 20 + float64(i)},
			HospitalLoc:  domain.Coordinate{Lat: 13, Lng: 77},
		}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, rec.ID)
	}

	// Resolution happens out of band; simulate it directly.
	if _, err := testPool.Exec(ctx, `UPDATE accidents SET status = 'resolved' WHERE accident_id = $1`, ids[1]); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 pending got %d", len(got))
	}
	if got[0].ID != ids[0] || got[1].ID != ids[2] {
		t.Fatalf("unexpected order/content: %+v", got)
	}
	for _, rec := range got {
		if rec.Status != domain.AccidentPending {
			t.Fatalf("resolved row leaked: %+v", rec)
		}
	}
}

func TestAmbulanceRepo_List_Snapshot(t *testing.T) {

	truncateAll(t)
	seedRegistry(t)

	repo := NewAmbulanceRepo(testPool, testLogger())

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 ambulances got %d", len(got))
	}

	byNo := map[string]domain.Ambulance{}
	for _, a := range got {
		byNo[a.VehicleNo] = a
	}
	if byNo["AMB-01"].Email != "amb01@example.com" || byNo["AMB-01"].Location.Lat != 12.97 {
		t.Fatalf("unexpected AMB-01: %+v", byNo["AMB-01"])
	}
	if byNo["AMB-02"].Email != "" {
		t.Fatalf("NULL email must scan as empty string: %+v", byNo["AMB-02"])
	}
}

func TestAmbulanceRepo_List_Empty(t *testing.T) {

	truncateAll(t)

	repo := NewAmbulanceRepo(testPool, testLogger())

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty snapshot got %d", len(got))
	}
}

func TestVehicleRepo_FindContacts_OK(t *testing.T) {

	truncateAll(t)
	seedRegistry(t)

	repo := NewVehicleRepo(testPool, testLogger())

	got, err := repo.FindContacts(context.Background(), "TN01AB1234")
	if err != nil {
		t.Fatalf("FindContacts: %v", err)
	}
	if got.OwnerEmail != "arun@example.com" {
		t.Fatalf("unexpected owner email: %q", got.OwnerEmail)
	}
	if len(got.EmergencyEmails) != 2 {
		t.Fatalf("expected 2 emergency emails got %v", got.EmergencyEmails)
	}
}

func TestVehicleRepo_FindContacts_NullFieldsSkipped(t *testing.T) {

	truncateAll(t)
	seedRegistry(t)

	repo := NewVehicleRepo(testPool, testLogger())

	got, err := repo.FindContacts(context.Background(), "TN02CD5678")
	if err != nil {
		t.Fatalf("FindContacts: %v", err)
	}
	if len(got.EmergencyEmails) != 0 {
		t.Fatalf("NULL emergency emails must be skipped: %v", got.EmergencyEmails)
	}

	recipients := got.Recipients()
	if len(recipients) != 1 || recipients[0] != "priya@example.com" {
		t.Fatalf("unexpected recipients: %v", recipients)
	}
}

func TestVehicleRepo_FindContacts_NotFound(t *testing.T) {

	truncateAll(t)
	seedRegistry(t)

	repo := NewVehicleRepo(testPool, testLogger())

	_, err := repo.FindContacts(context.Background(), "KA99ZZ0000")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
