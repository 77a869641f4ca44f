package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	res := Ok([]int{1, 2, 3}, "fetched")
	assert.True(t, res.Success)
	assert.Equal(t, []int{1, 2, 3}, res.Data)
	assert.Equal(t, "fetched", res.Message)
}

func TestFailZeroesData(t *testing.T) {
	res := Fail[string]("boom")
	assert.False(t, res.Success)
	assert.Equal(t, "", res.Data)
	assert.Equal(t, "boom", res.Message)
}

func TestFailListNeverNil(t *testing.T) {
	res := FailList[int]("boom")
	assert.False(t, res.Success)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)

	b, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"data":[],"message":"boom"}`, string(b))
}

func TestDoneHasNoPayload(t *testing.T) {
	res := Done("deleted")
	assert.True(t, res.Success)
	assert.Equal(t, "deleted", res.Message)

	b, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{},"message":"deleted"}`, string(b))
}
