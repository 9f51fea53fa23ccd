package common

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestPagination(t *testing.T) {
	cases := []struct {
		query          string
		page, pageSize int
	}{
		{"/", 1, DefaultPageSize},
		{"/?page=3&pageSize=25", 3, 25},
		{"/?page=0&pageSize=-4", 1, DefaultPageSize},
		{"/?page=x&pageSize=1000", 1, MaxPageSize},
	}
	for _, tc := range cases {
		page, size := Pagination(testContext(tc.query))
		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.pageSize, size, tc.query)
	}
}

func TestParseIDParam(t *testing.T) {
	c := testContext("/")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	_, err = ParseIDParam(c, "id")
	assert.EqualError(t, err, "invalid id")
}

func TestOptionalIDQuery(t *testing.T) {
	id, err := OptionalIDQuery(testContext("/"), "team_id")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = OptionalIDQuery(testContext("/?team_id=5"), "team_id")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uint(5), *id)

	_, err = OptionalIDQuery(testContext("/?team_id=abc"), "team_id")
	assert.Error(t, err)
}
