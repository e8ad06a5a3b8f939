package api

import (
	"Pictogram/internal/api/middleware"
	"Pictogram/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authOptGroup := userGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/profile/:username", group.UserHandler.GetProfile)
			}

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.PUT("/profile", group.UserHandler.UpdateProfile)
			}
		}

		followGroup := apiGroup.Group("/user-relation")
		{
			followGroup.GET("/followers/:user_id", group.UserFollowHandler.GetFollowers)
			followGroup.GET("/followings/:user_id", group.UserFollowHandler.GetFollowing)

			authGroup := followGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/isfollow/:user_id", group.UserFollowHandler.IsFollowing)
				authGroup.POST("/follow/:user_id", group.UserFollowHandler.Follow)
				authGroup.DELETE("/follow/:user_id", group.UserFollowHandler.Unfollow)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.GetHomeFeed)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/list/:user_id", group.PostHandler.GetPostsByUser)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.EditPost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.GET("/saved", group.PostHandler.GetSavedPosts)
			}
		}

		actionGroup := apiGroup.Group("/post/action")
		actionGroup.Use(middleware.AuthMiddleware())
		{
			actionGroup.POST("/likes/:post_id", group.PostActionHandler.ToggleLike)
			actionGroup.POST("/saves/:post_id", group.PostActionHandler.ToggleSave)

			actionGroup.POST("/comments/:post_id", group.PostActionHandler.CreateComment)
			actionGroup.PUT("/comments/:comment_id", group.PostActionHandler.EditComment)
			actionGroup.DELETE("/comments/:comment_id", group.PostActionHandler.DeleteComment)
		}
	}

	return r
}
