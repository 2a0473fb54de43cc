// Package menu provides the catalog repository: CRUD over menus, image
// variant lookup, and matching of catalog names against transcribed text.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/solvelysaid/orderdesk/internal/models"
)

// ErrNotFound is returned when a menu id or name does not exist.
var ErrNotFound = errors.New("menu: not found")

// Repo is the catalog repository.
type Repo struct {
	db *gorm.DB
}

// NewRepo creates a Repo.
func NewRepo(db *gorm.DB) (*Repo, error) {
	if db == nil {
		return nil, fmt.Errorf("menu: repo: db is required")
	}
	return &Repo{db: db}, nil
}

// List returns all menus in insertion (id) order, without image bytes.
func (r *Repo) List() ([]models.Menu, error) {
	var menus []models.Menu
	if err := r.db.Select("id", "name", "price", "description").
		Order("id").Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("menu: list: %w", err)
	}
	return menus, nil
}

// GetByID returns one menu without image bytes.
func (r *Repo) GetByID(id uint) (*models.Menu, error) {
	var m models.Menu
	err := r.db.Select("id", "name", "price", "description").First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("menu: get %d: %w", id, err)
	}
	return &m, nil
}

// GetByName returns one menu without image bytes.
func (r *Repo) GetByName(name string) (*models.Menu, error) {
	var m models.Menu
	err := r.db.Select("id", "name", "price", "description").
		Where("name = ?", name).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("menu: get %q: %w", name, err)
	}
	return &m, nil
}

// Insert adds a menu. Image bytes are stored as received.
func (r *Repo) Insert(m *models.Menu) error {
	if err := r.db.Create(m).Error; err != nil {
		return fmt.Errorf("menu: insert %q: %w", m.Name, err)
	}
	return nil
}

// UpdateFields holds a partial menu update; nil fields are left unchanged.
type UpdateFields struct {
	Name        *string
	Price       *int
	Description *string
	ImageThumb  []byte
	Image720p   []byte
}

// Update applies a partial update to a menu by id.
func (r *Repo) Update(id uint, fields UpdateFields) error {
	updates := map[string]interface{}{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Price != nil {
		updates["price"] = *fields.Price
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.ImageThumb != nil {
		updates["image_thumb"] = fields.ImageThumb
	}
	if fields.Image720p != nil {
		updates["image_720p"] = fields.Image720p
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&models.Menu{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("menu: update %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a menu by id.
func (r *Repo) Delete(id uint) error {
	result := r.db.Delete(&models.Menu{}, id)
	if result.Error != nil {
		return fmt.Errorf("menu: delete %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ImageThumb returns the thumbnail bytes for a menu name.
func (r *Repo) ImageThumb(name string) ([]byte, error) {
	return r.image(name, "image_thumb")
}

// Image720p returns the 720p bytes for a menu name.
func (r *Repo) Image720p(name string) ([]byte, error) {
	return r.image(name, "image_720p")
}

func (r *Repo) image(name, column string) ([]byte, error) {
	var m models.Menu
	err := r.db.Select(column).Where("name = ?", name).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("menu: image for %q: %w", name, err)
	}
	data := m.ImageThumb
	if column == "image_720p" {
		data = m.Image720p
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}
	return data, nil
}

// Match returns the first catalog name found as a case-insensitive substring
// of text, in catalog (id) order, or "" when nothing matches. Substring
// matching keeps the reference behavior: catalog ordering decides the winner
// when several names occur in the text.
func (r *Repo) Match(text string) (string, error) {
	menus, err := r.List()
	if err != nil {
		return "", err
	}
	lowered := strings.ToLower(text)
	for _, m := range menus {
		if m.Name != "" && strings.Contains(lowered, strings.ToLower(m.Name)) {
			return m.Name, nil
		}
	}
	return "", nil
}
