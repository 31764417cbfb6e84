package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// tenantKey is the gin context key the tenant middleware stores the caller's
// tenant under.
const tenantKey = "tenant_id"

// TenantRequired rejects requests without an X-Tenant-ID header (set by the
// gateway after authentication) and stores the tenant for the handlers.
func TenantRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant := c.GetHeader("X-Tenant-ID")
		if tenant == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Tenant ID is required",
				"code":  "MISSING_TENANT_ID",
			})
			c.Abort()
			return
		}
		c.Set(tenantKey, tenant)
		c.Next()
	}
}
