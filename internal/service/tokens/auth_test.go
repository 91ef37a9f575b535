package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TokensTestSuite struct {
	suite.Suite
	key []byte
}

func TestTokensSuite(t *testing.T) {
	suite.Run(t, new(TokensTestSuite))
}

func (s *TokensTestSuite) SetupTest() {
	s.key = []byte("secret")
}

func (s *TokensTestSuite) TestRoundTrip() {
	token, err := GenerateOwnerJWT(OwnerClaims{ID: 42, Email: "a@b.c", Admin: true}, time.Minute, s.key)
	s.Require().NoError(err)

	claims, err := ValidateOwnerJWT(token, s.key)
	s.Require().NoError(err)
	s.Equal(int64(42), claims.ID)
	s.Equal("a@b.c", claims.Email)
	s.True(claims.Admin)
}

func (s *TokensTestSuite) TestExpired() {
	token, err := GenerateOwnerJWT(OwnerClaims{ID: 1}, -time.Minute, s.key)
	s.Require().NoError(err)

	_, err = ValidateOwnerJWT(token, s.key)
	s.Require().ErrorIs(err, ErrTokenExpired)
}

func (s *TokensTestSuite) TestWrongKeyAndOwner() {
	token, err := GenerateOwnerJWT(OwnerClaims{ID: 1}, time.Minute, s.key)
	s.Require().NoError(err)
	_, err = ValidateOwnerJWT(token, []byte("other"))
	s.Require().Error(err)

	token, err = GenerateOwnerJWT(OwnerClaims{}, time.Minute, s.key)
	s.Require().NoError(err)
	_, err = ValidateOwnerJWT(token, s.key)
	s.Require().Error(err)
}
