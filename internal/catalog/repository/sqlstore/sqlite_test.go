package sqlstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"jobfinder-chatbot/internal/catalog"
	repo "jobfinder-chatbot/internal/catalog/repository"
	"jobfinder-chatbot/pkg/log"
	"jobfinder-chatbot/pkg/sqldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSeededSQLite opens a fresh SQLite file with the pool settings used in production.
func newSeededSQLite(t *testing.T) repo.Repository {
	t.Helper()
	r, _ := newSeededSQLiteDB(t)
	return r
}

func newSeededSQLiteDB(t *testing.T) (repo.Repository, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, dialect, err := sqldb.Open(ctx, sqldb.Config{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "jobfinder.db"),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := New(db, dialect, log.NewNop())
	require.NoError(t, r.Seed(ctx))
	return r, db
}

func TestSQLite_Lookups(t *testing.T) {
	ctx := context.Background()
	r := newSeededSQLite(t)

	products, err := r.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), products)

	jobs, err := r.CountJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), jobs)

	best, err := r.GetBestSellingProduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Resume Review Service", best.Name)
	assert.Equal(t, int64(200), best.SalesCount)

	p, err := r.GetProduct(ctx, repo.GetProductOptions{Name: "interview PREP"})
	require.NoError(t, err)
	assert.Equal(t, catalog.Product{Name: "AI Interview Prep Tool", Price: 19.99, SalesCount: 80}, p)

	missing, err := r.GetProduct(ctx, repo.GetProductOptions{Name: "Nonexistent Gadget"})
	require.NoError(t, err)
	assert.False(t, missing.Found())

	software, err := r.ListJobs(ctx, repo.ListJobsOptions{Category: "soft"})
	require.NoError(t, err)
	assert.Equal(t, []catalog.JobSummary{
		{Title: "Senior Python Developer", Salary: 120000},
		{Title: "Junior Fullstack Dev", Salary: 80000},
	}, software)

	tech, err := r.ListJobs(ctx, repo.ListJobsOptions{CompanyName: "tech solutions"})
	require.NoError(t, err)
	assert.Len(t, tech, 2)

	none, err := r.ListJobs(ctx, repo.ListJobsOptions{CompanyName: "Acme"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := newSeededSQLite(t)

	require.NoError(t, r.Seed(ctx))

	total, err := r.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestSQLite_WildcardsAreLiteral(t *testing.T) {
	ctx := context.Background()
	r := newSeededSQLite(t)

	p, err := r.GetProduct(ctx, repo.GetProductOptions{Name: "%"})
	require.NoError(t, err)
	assert.False(t, p.Found())

	jobs, err := r.ListJobs(ctx, repo.ListJobsOptions{Category: "_"})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSQLite_NonASCIIFragments(t *testing.T) {
	ctx := context.Background()
	r, db := newSeededSQLiteDB(t)

	_, err := db.ExecContext(ctx, insertProduct, 5, "Gói Ứng Tuyển Nhanh", 15.5, "Nộp hồ sơ trong ngày", 30)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, insertCompany, 4, "Công Ty Á Châu", "12 Lê Lợi", "Tài chính")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, insertJob, 5, "Chuyên Viên Tín Dụng", 60000, 4, "Tài Chính")
	require.NoError(t, err)

	for _, name := range []string{"Ứng Tuyển", "ứng tuyển", "ỨNG TUYỂN"} {
		p, err := r.GetProduct(ctx, repo.GetProductOptions{Name: name})
		require.NoError(t, err)
		assert.Equal(t, "Gói Ứng Tuyển Nhanh", p.Name, "fragment %q", name)
	}

	for _, company := range []string{"Á Châu", "á châu"} {
		jobs, err := r.ListJobs(ctx, repo.ListJobsOptions{CompanyName: company})
		require.NoError(t, err)
		assert.Equal(t, []catalog.JobSummary{{Title: "Chuyên Viên Tín Dụng", Salary: 60000}}, jobs, "fragment %q", company)
	}

	jobs, err := r.ListJobs(ctx, repo.ListJobsOptions{Category: "TÀI CHÍNH"})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}
