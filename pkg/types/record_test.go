package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordRow(t *testing.T) {
	pf := PFRecord{N: 6, R: 3, C: 5, Class: ClassPFF3}
	assert.Equal(t, []string{"6", "3", "5", "PF_F3"}, pf.Row())

	bf := BFRecord{N: 4, R: 2, C: 3, Class: ClassExceptional}
	assert.Equal(t, []string{"4", "2", "3", "exceptional"}, bf.Row())
}
