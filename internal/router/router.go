// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"weekly-todo/internal/cache"
	"weekly-todo/internal/database"
	"weekly-todo/internal/handler"
	"weekly-todo/internal/handler/admin"
	"weekly-todo/internal/handler/auth"
	"weekly-todo/internal/handler/tasks"
	"weekly-todo/internal/middleware"
)

// 註冊濫用防護：平均每秒一次，短暫突發另計。
const signupRatePerSecond = 1

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth)

	// 認證與註冊
	api.POST("/login", auth.LoginHandler(db))
	api.POST("/signup", auth.SignupHandler(db),
		echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(signupRatePerSecond)))
	api.GET("/signup-status", auth.SignupStatusHandler(db, rdb))
	api.GET("/me", auth.MeHandler(db), middleware.RequireAuth)

	// 任務 CRUD 與重排
	apiTasks := api.Group("/tasks", middleware.RequireAuth)
	apiTasks.GET("", tasks.ListTasksHandler(db))
	apiTasks.POST("", tasks.CreateTaskHandler(db))
	apiTasks.POST("/reorder", tasks.ReorderTasksHandler(db))
	apiTasks.PUT("/:id", tasks.UpdateTaskHandler(db))
	apiTasks.DELETE("/:id", tasks.DeleteTaskHandler(db))

	// 管理員專屬
	apiAdmin := api.Group("/admin", middleware.RequireAdmin)
	apiAdmin.GET("/users", admin.ListUsersHandler(db))
	apiAdmin.GET("/settings", admin.GetSettingsHandler(db))
	apiAdmin.PUT("/settings", admin.UpdateSettingsHandler(db, rdb))
}
