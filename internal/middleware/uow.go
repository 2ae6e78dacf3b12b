package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/telconl/catalog-api/internal/httperr"
)

const ContextTx = "dbTx"

// UnitOfWork scopes one transaction to each request: begun before the
// handler runs, committed when the response is below 400, rolled back
// otherwise. The deferred rollback also covers panics.
func UnitOfWork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tx := db.Begin()
		if tx.Error != nil {
			httperr.Internal(c, "transaction_failed", "could not start transaction")
			c.Abort()
			return
		}

		done := false
		defer func() {
			if !done {
				tx.Rollback()
			}
		}()

		c.Set(ContextTx, tx)
		c.Next()

		if c.Writer.Status() < http.StatusBadRequest {
			tx.Commit()
		} else {
			tx.Rollback()
		}
		done = true
	}
}

// Tx returns the request-scoped transaction set by UnitOfWork.
func Tx(c *gin.Context) *gorm.DB {
	return c.MustGet(ContextTx).(*gorm.DB)
}
