package validation

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "dataguide/internal/errors"
)

func TestFileValidator_ValidateDataset(t *testing.T) {
	v := NewFileValidator(slog.Default())

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantErr   error
		wantAny   bool
	}{
		{
			name: "csv file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "sample_sales.csv")
				require.NoError(t, os.WriteFile(path, []byte("Date\n"), 0644))
				return path
			},
		},
		{
			name: "xlsx file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "grades.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
				return path
			},
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr: apierrors.ErrMissingFile,
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr: apierrors.ErrMissingFile,
		},
		{
			name: "wrong extension",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "notes.txt")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
				return path
			},
			wantAny: true,
		},
		{
			name: "temporary excel file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "~$grades.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
				return path
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDataset(tt.setupFunc(t))
			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			case tt.wantAny:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	t.Run("existing", func(t *testing.T) {
		assert.NoError(t, v.ValidateOutputDirectory(t.TempDir(), false))
	})

	t.Run("missing without create", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "projects")
		err := v.ValidateOutputDirectory(dir, false)
		assert.True(t, errors.Is(err, apierrors.ErrOutputDirMissing))
		assert.NoDirExists(t, dir)
	})

	t.Run("missing with create", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "projects")
		require.NoError(t, v.ValidateOutputDirectory(dir, true))
		assert.DirExists(t, dir)
		assert.NoFileExists(t, filepath.Join(dir, ".write_test"))
	})
}
