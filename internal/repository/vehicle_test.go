package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern_Substring(t *testing.T) {
	assert.Equal(t, "%Durban%", likePattern("Durban"))
	assert.Equal(t, "%Jo%", likePattern("Jo"))
}

func TestLikePattern_EscapesMetacharacters(t *testing.T) {
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\taxi%`, likePattern(`c:\taxi`))
}
