package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := versionCmd()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "restaurantectl dev\n", out.String())
}

func TestMigrateCmd_Subcomandos(t *testing.T) {
	names := map[string]bool{}
	for _, c := range migrateCmd().Commands() {
		names[c.Name()] = true
	}
	assert.Equal(t, map[string]bool{"up": true, "down": true, "version": true}, names)

	down, _, err := migrateCmd().Find([]string{"down"})
	require.NoError(t, err)
	steps, err := down.Flags().GetInt("steps")
	require.NoError(t, err)
	assert.Equal(t, 1, steps)
}

func TestSeedCmd_Defaults(t *testing.T) {
	cmd := seedCmd()
	email, err := cmd.Flags().GetString("email")
	require.NoError(t, err)
	assert.Equal(t, "admin@demo.co", email)
	mesas, err := cmd.Flags().GetInt("mesas")
	require.NoError(t, err)
	assert.Equal(t, 8, mesas)
}
