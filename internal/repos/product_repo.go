package repos

import (
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"stockpile/internal/domain"
)

// createdDateLayout matches the display format the UI shows verbatim.
const createdDateLayout = "2006-01-02 15:04:05"

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// checkFields is the store-side defensive re-check. Callers validate
// drafts before invoking the repo, but malformed values must never reach
// the table regardless.
func checkFields(name, category string, price decimal.Decimal, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(category) == "" {
		return &domain.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if !price.IsPositive() {
		return &domain.ValidationError{Field: "price", Reason: "must be greater than 0"}
	}
	if quantity < 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return nil
}

// Create inserts a new product stamped with the current time and returns
// its assigned id.
func (r *ProductRepo) Create(name, category string, price decimal.Decimal, quantity int) (int64, error) {
	if err := checkFields(name, category, price, quantity); err != nil {
		return 0, err
	}
	res, err := r.db.Exec(`
		INSERT INTO products(name, category, price, quantity, created_date)
		VALUES (?, ?, ?, ?, ?)
	`, name, category, price, quantity, time.Now().Format(createdDateLayout))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAll returns every product, most recently created first.
func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
		SELECT id, name, category, price, quantity, created_date
		FROM products
		ORDER BY id DESC
	`)
	return out, err
}

// asciiLower folds A-Z only, mirroring sqlite's LOWER() so both sides
// of the LIKE comparison use the same folding.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Search matches term as a case-insensitive substring of name or
// category. An empty term behaves exactly like ListAll. Case folding
// is ASCII-only: sqlite's LOWER() does not touch non-ASCII letters.
func (r *ProductRepo) Search(term string) ([]domain.Product, error) {
	if strings.TrimSpace(term) == "" {
		return r.ListAll()
	}
	like := "%" + asciiLower(term) + "%"
	var out []domain.Product
	err := r.db.Select(&out, `
		SELECT id, name, category, price, quantity, created_date
		FROM products
		WHERE LOWER(name) LIKE ? OR LOWER(category) LIKE ?
		ORDER BY id DESC
	`, like, like)
	return out, err
}

// Get fetches one product by id. Returns sql.ErrNoRows when absent.
func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
		SELECT id, name, category, price, quantity, created_date
		FROM products
		WHERE id = ?
	`, id)
	return p, err
}

// Update replaces all mutable fields; id and created_date are preserved.
// Returns the number of rows affected (0 or 1).
func (r *ProductRepo) Update(id int64, name, category string, price decimal.Decimal, quantity int) (int64, error) {
	if err := checkFields(name, category, price, quantity); err != nil {
		return 0, err
	}
	res, err := r.db.Exec(`
		UPDATE products
		SET name = ?, category = ?, price = ?, quantity = ?
		WHERE id = ?
	`, name, category, price, quantity, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the row. Deletion is immediate and irreversible; there
// is no tombstone. Returns the number of rows affected (0 or 1).
func (r *ProductRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Count returns the current number of products.
func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}
