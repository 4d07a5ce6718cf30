package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewCountryDAO,
	NewReviewDAO,
	NewCommentDAO,
	NewReviewLikeDAO,
	NewCountrySaveDAO,
)
