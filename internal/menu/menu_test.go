package menu

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/solvelysaid/orderdesk/internal/models"
)

func openTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Menu{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo, err := NewRepo(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestNewRepo_NilDB(t *testing.T) {
	if _, err := NewRepo(nil); err == nil {
		t.Error("expected error for nil db")
	}
}

func TestInsertListGet(t *testing.T) {
	repo := openTestRepo(t)

	if err := repo.Insert(&models.Menu{Name: "Pizza", Price: 129, ImageThumb: []byte{1, 2}}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(&models.Menu{Name: "ต้มยำ", Price: 99}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	menus, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(menus) != 2 {
		t.Fatalf("len = %d, want 2", len(menus))
	}
	if menus[0].Name != "Pizza" || menus[1].Name != "ต้มยำ" {
		t.Errorf("list order = %q, %q", menus[0].Name, menus[1].Name)
	}
	// Image bytes stay out of list queries.
	if menus[0].ImageThumb != nil {
		t.Error("List returned image bytes")
	}

	m, err := repo.GetByName("ต้มยำ")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if m.Price != 99 {
		t.Errorf("price = %d, want 99", m.Price)
	}

	if _, err := repo.GetByName("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing id = %v, want ErrNotFound", err)
	}
}

func TestUpdate_Partial(t *testing.T) {
	repo := openTestRepo(t)
	m := &models.Menu{Name: "Burger", Price: 89, Description: "old"}
	if err := repo.Insert(m); err != nil {
		t.Fatalf("insert: %v", err)
	}

	price := 95
	if err := repo.Update(m.ID, UpdateFields{Price: &price}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Price != 95 {
		t.Errorf("price = %d, want 95", got.Price)
	}
	if got.Description != "old" {
		t.Errorf("description = %q, want unchanged", got.Description)
	}

	if err := repo.Update(999, UpdateFields{Price: &price}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing = %v, want ErrNotFound", err)
	}
	// An empty update is a no-op, not an error.
	if err := repo.Update(m.ID, UpdateFields{}); err != nil {
		t.Errorf("empty update: %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := openTestRepo(t)
	m := &models.Menu{Name: "Steak"}
	repo.Insert(m)

	if err := repo.Delete(m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get deleted = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}
}

func TestImages(t *testing.T) {
	repo := openTestRepo(t)
	repo.Insert(&models.Menu{Name: "Pizza", ImageThumb: []byte("thumb"), Image720p: []byte("big")})
	repo.Insert(&models.Menu{Name: "Burger"})

	thumb, err := repo.ImageThumb("Pizza")
	if err != nil {
		t.Fatalf("thumb: %v", err)
	}
	if string(thumb) != "thumb" {
		t.Errorf("thumb = %q", thumb)
	}

	big, err := repo.Image720p("Pizza")
	if err != nil {
		t.Fatalf("720p: %v", err)
	}
	if string(big) != "big" {
		t.Errorf("720p = %q", big)
	}

	// A menu without an image reports not found, like an unknown name.
	if _, err := repo.ImageThumb("Burger"); !errors.Is(err, ErrNotFound) {
		t.Errorf("imageless menu = %v, want ErrNotFound", err)
	}
	if _, err := repo.ImageThumb("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown menu = %v, want ErrNotFound", err)
	}
}

func TestMatch(t *testing.T) {
	repo := openTestRepo(t)
	repo.Insert(&models.Menu{Name: "ต้มยำ"})
	repo.Insert(&models.Menu{Name: "Pizza"})
	repo.Insert(&models.Menu{Name: "Tom Yum"})

	tests := []struct {
		text string
		want string
	}{
		{"อยากกินต้มยำเผ็ดๆ", "ต้มยำ"},
		{"one PIZZA please", "Pizza"},
		{"tom yum and pizza", "Pizza"}, // catalog order decides: Pizza has the lower id
		{"nothing on the menu", ""},
	}
	for _, tt := range tests {
		got, err := repo.Match(tt.text)
		if err != nil {
			t.Fatalf("match %q: %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
