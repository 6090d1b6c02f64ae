package utils

import (
	"context"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionDataFromContext(ctx context.Context) string {
	if sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(string); ok {
		return sessionData
	}
	return ""
}
