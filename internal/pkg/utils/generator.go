package utils

import (
	"fmt"
	"internistika-service/internal/pkg/constvars"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateMediaObjectName builds a collision-free object name for a visit
// media upload, namespaced by kind (rentgen/ct/echo).
func GenerateMediaObjectName(kind, fileName string) string {
	extension := filepath.Ext(fileName)
	base := strings.TrimSuffix(filepath.Base(fileName), extension)
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s/%s_%s_%s%s", kind, base, timestamp, uuid.NewString(), extension)
}
