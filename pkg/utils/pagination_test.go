package utils

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestPaging(t *testing.T) {
	c := qt.New(t)

	c.Assert(TotalPages(0, 10), qt.Equals, 0)
	c.Assert(TotalPages(25, 10), qt.Equals, 3)
	c.Assert(TotalPages(30, 10), qt.Equals, 3)
	c.Assert(TotalPages(5, 0), qt.Equals, 0)

	c.Assert(HasMore(25, 2, 10), qt.IsTrue)
	c.Assert(HasMore(25, 3, 10), qt.IsFalse)

	c.Assert(Offset(3, 20), qt.Equals, 40)
	c.Assert(Offset(0, 20), qt.Equals, 0)
}

func TestValidatePaging(t *testing.T) {
	c := qt.New(t)

	c.Assert(ValidatePaging(1, 20), qt.IsNil)
	c.Assert(ValidatePaging(0, 20), qt.ErrorIs, ErrInvalidPage)
	c.Assert(ValidatePaging(1, 0), qt.ErrorIs, ErrInvalidPageSize)
	c.Assert(ValidatePaging(1, 101), qt.ErrorIs, ErrInvalidPageSize)
}
