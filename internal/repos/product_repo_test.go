package repos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"stockpile/internal/domain"
	"stockpile/internal/repos"
)

func memrepo(t *testing.T) *repos.ProductRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewProductRepo(db)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCreateThenListAll(t *testing.T) {
	r := memrepo(t)

	id, err := r.Create("Widget", "Hardware", dec(t, "9.99"), 10)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	products, err := r.ListAll()
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	require.Equal(t, id, p.ID)
	require.Equal(t, "Widget", p.Name)
	require.Equal(t, "Hardware", p.Category)
	require.True(t, dec(t, "9.99").Equal(p.Price), "price = %s", p.Price)
	require.Equal(t, 10, p.Quantity)

	_, err = time.Parse("2006-01-02 15:04:05", p.CreatedDate)
	require.NoError(t, err, "created_date %q not in expected layout", p.CreatedDate)
}

func TestCreateRejectsInvalidDrafts(t *testing.T) {
	r := memrepo(t)

	cases := []struct {
		name     string
		prodName string
		category string
		price    decimal.Decimal
		quantity int
	}{
		{"empty name", "  ", "Hardware", dec(t, "9.99"), 1},
		{"empty category", "Widget", "", dec(t, "9.99"), 1},
		{"negative price", "Widget", "Hardware", dec(t, "-5"), 1},
		{"zero price", "Widget", "Hardware", decimal.Zero, 1},
		{"negative quantity", "Widget", "Hardware", dec(t, "9.99"), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Create(tc.prodName, tc.category, tc.price, tc.quantity)
			require.Error(t, err)
			require.True(t, domain.IsValidation(err), "want ValidationError, got %v", err)
		})
	}

	n, err := r.Count()
	require.NoError(t, err)
	require.Zero(t, n, "no row may be inserted for a rejected draft")
}

func TestUpdatePreservesIdentity(t *testing.T) {
	r := memrepo(t)

	id, err := r.Create("Widget", "Hardware", dec(t, "9.99"), 10)
	require.NoError(t, err)

	before, err := r.Get(id)
	require.NoError(t, err)

	n, err := r.Update(id, "Widget", "Hardware", dec(t, "12.50"), 5)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	products, err := r.ListAll()
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	require.Equal(t, id, p.ID)
	require.True(t, dec(t, "12.50").Equal(p.Price), "price = %s", p.Price)
	require.Equal(t, 5, p.Quantity)
	require.Equal(t, before.CreatedDate, p.CreatedDate, "created_date must never change")
}

func TestUpdateMissingAffectsZeroRows(t *testing.T) {
	r := memrepo(t)

	n, err := r.Update(9999, "Widget", "Hardware", dec(t, "9.99"), 1)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestUpdateRejectsInvalidDraft(t *testing.T) {
	r := memrepo(t)

	id, err := r.Create("Widget", "Hardware", dec(t, "9.99"), 10)
	require.NoError(t, err)

	_, err = r.Update(id, "Widget", "Hardware", dec(t, "-1"), 10)
	require.True(t, domain.IsValidation(err))

	p, err := r.Get(id)
	require.NoError(t, err)
	require.True(t, dec(t, "9.99").Equal(p.Price), "rejected update must not touch the row")
}

func TestDeleteTwice(t *testing.T) {
	r := memrepo(t)

	id, err := r.Create("Widget", "Hardware", dec(t, "9.99"), 10)
	require.NoError(t, err)

	n, err := r.Delete(id)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = r.Delete(id)
	require.NoError(t, err)
	require.Zero(t, n, "second delete reports zero rows affected")

	products, err := r.ListAll()
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	r := memrepo(t)

	_, err := r.Create("Widget", "Hardware", dec(t, "9.99"), 10)
	require.NoError(t, err)
	_, err = r.Create("Gadget", "Tools", dec(t, "4.50"), 3)
	require.NoError(t, err)
	_, err = r.Create("Sprocket", "Hardware", dec(t, "1.25"), 40)
	require.NoError(t, err)

	// substring of category, mixed case
	got, err := r.Search("HARD")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Sprocket", got[0].Name, "most recently created first")
	require.Equal(t, "Widget", got[1].Name)

	// substring of name
	got, err = r.Search("adg")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Gadget", got[0].Name)

	// no match
	got, err = r.Search("xyz")
	require.NoError(t, err)
	require.Empty(t, got)

	// empty term equals ListAll
	all, err := r.ListAll()
	require.NoError(t, err)
	got, err = r.Search("")
	require.NoError(t, err)
	require.Equal(t, all, got)
}

func TestSearchFoldsLikeTheStore(t *testing.T) {
	r := memrepo(t)

	_, err := r.Create("MATÉ Gourd", "Drinkware", dec(t, "15.00"), 2)
	require.NoError(t, err)

	// the term must be folded the way LOWER() folds the column:
	// ASCII letters only, non-ASCII left untouched
	got, err := r.Search("MATÉ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "MATÉ Gourd", got[0].Name)

	got, err = r.Search("maté gourd")
	require.NoError(t, err)
	require.Empty(t, got, "non-ASCII letters do not case-fold")
}

func TestListOrderedByIDDescending(t *testing.T) {
	r := memrepo(t)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := r.Create(name, "Misc", dec(t, "1.00"), 1)
		require.NoError(t, err)
	}

	products, err := r.ListAll()
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.Equal(t, "Third", products[0].Name)
	require.Equal(t, "Second", products[1].Name)
	require.Equal(t, "First", products[2].Name)
	require.Greater(t, products[0].ID, products[1].ID)
	require.Greater(t, products[1].ID, products[2].ID)
}
