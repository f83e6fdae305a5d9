package service

import (
	"context"

	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
