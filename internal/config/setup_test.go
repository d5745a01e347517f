package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avbilling/avbilling/internal/domain/customer"
	"github.com/avbilling/avbilling/internal/domain/product"
	"github.com/avbilling/avbilling/internal/domain/settings"
	"github.com/avbilling/avbilling/internal/storage"
	"github.com/avbilling/avbilling/internal/types"
)

func TestEnsureInitialSetupSeedsFreshInstallation(t *testing.T) {
	paths := Paths{DataDir: t.TempDir()}

	require.NoError(t, EnsureInitialSetup(paths))

	for _, dir := range []string{paths.DataDir, paths.InvoicesDir(), paths.BackupsDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	customers, err := storage.Load[map[string][]*customer.Customer](paths.Customers())
	require.NoError(t, err)
	require.Len(t, customers["customers"], 1)
	assert.Equal(t, "CUST001", customers["customers"][0].CustomerID)
	assert.Equal(t, "Amit Traders", customers["customers"][0].Name)

	products, err := storage.Load[map[string][]*product.Product](paths.Products())
	require.NoError(t, err)
	require.Len(t, products["products"], 1)
	assert.Equal(t, "PROD001", products["products"][0].ProductCode)

	st, err := storage.Load[*settings.Settings](paths.Settings())
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, settings.Default().Version, st.Version)

	_, err = os.Stat(paths.Ledger(types.CurrentFiscalYear()))
	assert.NoError(t, err)
}

func TestEnsureInitialSetupLeavesExistingDocumentsAlone(t *testing.T) {
	paths := Paths{DataDir: t.TempDir()}
	require.NoError(t, EnsureInitialSetup(paths))

	custom := []byte(`{"customers":[{"customer_id":"CUST777","name":"Existing"}]}`)
	require.NoError(t, os.WriteFile(paths.Customers(), custom, 0o644))

	require.NoError(t, EnsureInitialSetup(paths))

	got, err := os.ReadFile(paths.Customers())
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestGetDefaultConfigValidates(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.NoError(t, cfg.Validate())
}
