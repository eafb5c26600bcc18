package handler

import (
	"foodfinder/internal/usecase"
)

var (
	authHandler     *AuthHandler
	searchHandler   *SearchHandler
	favoriteHandler *FavoriteHandler
	reviewHandler   *ReviewHandler
	userHandler     *UserHandler
	adminHandler    *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	searchUseCase *usecase.SearchUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	userUseCase *usecase.UserUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	searchHandler = NewSearchHandler(searchUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	userHandler = NewUserHandler(userUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetSearchHandler() *SearchHandler {
	return searchHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
