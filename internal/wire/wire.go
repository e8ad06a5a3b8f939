package wire

import (
	"Pictogram/internal/api"
	"Pictogram/internal/api/handler"
	"Pictogram/internal/repository"
	"Pictogram/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)

	userService := service.NewUserService(userRepo, postRepo)
	followService := service.NewUserFollowService(userRepo)
	postService := service.NewPostService(postRepo)
	actionService := service.NewPostActionService(postRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(followService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
