package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"artisan-market-api/internal/domain/repository"
	"artisan-market-api/internal/interfaces/http/dto"
	apperrors "artisan-market-api/pkg/errors"
	"artisan-market-api/pkg/logger"
)

// respondError 将应用错误映射为 HTTP 响应
// 5xx 错误只回传脱敏的 message，细节进日志
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.AsAppError(err)
	}

	status := appErr.HTTPStatus
	if status >= 500 {
		logger.Error(c.Request.Context(), "请求处理失败", err, "path", c.FullPath())
	}
	dto.Error(c, status, appErr.Message)
}

// parsePagination 解析分页查询参数
func parsePagination(c *gin.Context) repository.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return repository.NewPagination(page, pageSize)
}

// pageMetaOf 从分页结果构建响应元数据
func pageMetaOf[T any](result *repository.PagedResult[T]) *dto.PageMeta {
	return dto.NewPageMeta(result.Page, result.PageSize, result.Total, result.TotalPages)
}
