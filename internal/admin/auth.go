// Package admin gates the administrative API. Credentials are a single
// operator account from configuration; sessions are bearer tokens held in
// memory for the lifetime of the process.
package admin

import (
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type Gate struct {
	username string
	// hash wins when set; plain is the fallback for local setups that
	// configure ADMIN_PASSWORD directly.
	hash  string
	plain string

	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewGate(username, passwordHash, password string) *Gate {
	return &Gate{
		username: username,
		hash:     passwordHash,
		plain:    password,
		tokens:   make(map[string]struct{}),
	}
}

// Login checks the credential pair and issues a session token.
func (g *Gate) Login(username, password string) (string, error) {
	if username != g.username {
		return "", ErrInvalidCredentials
	}
	ok := false
	if g.hash != "" {
		ok = CheckPassword(g.hash, password)
	} else {
		ok = g.plain != "" && password == g.plain
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	token := uuid.NewString()
	g.mu.Lock()
	g.tokens[token] = struct{}{}
	g.mu.Unlock()
	return token, nil
}

func (g *Gate) ValidToken(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.tokens[token]
	return ok
}

// RequireAuth rejects requests without a valid Authorization bearer token.
func RequireAuth(g *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if token == auth || !g.ValidToken(token) {
			c.AbortWithStatusJSON(401, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
