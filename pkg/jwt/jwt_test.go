package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/tienda-ledger/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "emp-1", "shop-1", "cashier", "tienda-ledger-test", 60)
	require.NoError(t, err)

	emp, owner, role, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", emp)
	assert.Equal(t, "shop-1", owner)
	assert.Equal(t, "cashier", role)
}

func TestParse_Errores(t *testing.T) {
	expired, err := pkgjwt.Generate(secret, "emp-1", "shop-1", "owner", "x", -1)
	require.NoError(t, err)
	_, _, _, err = pkgjwt.Parse(secret, expired)
	assert.Error(t, err, "token expirado")

	valid, err := pkgjwt.Generate(secret, "emp-1", "shop-1", "owner", "x", 60)
	require.NoError(t, err)
	_, _, _, err = pkgjwt.Parse("otro-secret", valid)
	assert.Error(t, err, "firma incorrecta")

	noOwner, err := pkgjwt.Generate(secret, "emp-1", "", "owner", "x", 60)
	require.NoError(t, err)
	_, _, _, err = pkgjwt.Parse(secret, noOwner)
	assert.Error(t, err, "sin tenant")

	_, err = pkgjwt.Generate("", "emp-1", "shop-1", "owner", "x", 60)
	assert.Error(t, err)
}
