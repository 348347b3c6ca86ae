package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/udacitrivia/internal/middleware"
)

// RegisterRoutes настраивает маршруты API и единые ответы 404/405
func RegisterRoutes(
	router *gin.Engine,
	questionHandler *QuestionHandler,
	categoryHandler *CategoryHandler,
	quizHandler *QuizHandler,
) {
	// Неизвестные маршруты и методы отдают тот же конверт ошибки, что и API
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed)
	})

	// Категории
	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)

		categoryWithID := categories.Group("/:id")
		categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
		{
			categoryWithID.GET("/questions", categoryHandler.GetQuestionsByCategory)
		}
	}

	// Вопросы
	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.GetQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.POST("/bulk", questionHandler.BulkCreateQuestions)
		questions.GET("/export", questionHandler.ExportQuestions)

		questionWithID := questions.Group("/:id")
		questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
		{
			questionWithID.DELETE("", questionHandler.DeleteQuestion)
		}
	}

	// Игровой режим
	router.POST("/quizzes", quizHandler.NextQuestion)
}
