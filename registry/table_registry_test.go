/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
)

func playerTable(name string) storagemodels.TableDefinition {
	return storagemodels.TableDefinition{
		TableName: name,
		HashKey:   storagemodels.KeyAttribute{Name: "id", Type: storagemodels.KeyTypeString},
	}
}

func TestRegisterAndGetTableDefinition(t *testing.T) {
	require.NoError(t, RegisterTableDefinition(playerTable("reg-players")))

	def, err := GetTableDefinition("reg-players")
	require.NoError(t, err)
	assert.Equal(t, "reg-players", def.TableName)
	assert.Equal(t, "id", def.HashKey.Name)
}

func TestRegisterOverwrites(t *testing.T) {
	first := playerTable("reg-overwrite")
	require.NoError(t, RegisterTableDefinition(first))

	second := first
	second.ReadCapacity = 10
	second.WriteCapacity = 10
	require.NoError(t, RegisterTableDefinition(second))

	def, err := GetTableDefinition("reg-overwrite")
	require.NoError(t, err)
	assert.Equal(t, int64(10), def.ReadCapacity)
}

func TestRegisterValidation(t *testing.T) {
	err := RegisterTableDefinition(storagemodels.TableDefinition{})
	require.Error(t, err)
	assert.True(t, dserrors.IsValidationError(err))

	err = RegisterTableDefinition(storagemodels.TableDefinition{TableName: "reg-nokey"})
	require.Error(t, err)
	assert.True(t, dserrors.IsValidationError(err))
}

func TestGetUnknownTableDefinition(t *testing.T) {
	_, err := GetTableDefinition("reg-unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, dserrors.ErrNoTableDefinition)
}

func TestListTableDefinitionsSorted(t *testing.T) {
	require.NoError(t, RegisterTableDefinition(playerTable("reg-list-b")))
	require.NoError(t, RegisterTableDefinition(playerTable("reg-list-a")))

	names := ListTableDefinitions()
	idxA, idxB := -1, -1
	for i, name := range names {
		switch name {
		case "reg-list-a":
			idxA = i
		case "reg-list-b":
			idxB = i
		}
	}
	require.NotEqual(t, -1, idxA)
	require.NotEqual(t, -1, idxB)
	assert.Less(t, idxA, idxB)
}
