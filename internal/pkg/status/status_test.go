package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "pending", Name(Pending))
	assert.Equal(t, "success", Name(Success))
	assert.Equal(t, "failure", Name(Failure))
}

func TestFrom(t *testing.T) {
	assert.Equal(t, Pending, From("pending"))
	assert.Equal(t, Success, From("success"))
	assert.Equal(t, Failure, From("failure"))
	assert.Equal(t, Status(0), From("olia"))
}
