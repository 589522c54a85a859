package utils

import (
	"fmt"
	"log"
	"time"

	"jumly/config"

	"github.com/go-resty/resty/v2"
)

// UploadToStorage pushes a file buffer to the object storage zone and
// returns the generated key. Keys are prefixed with unix millis so repeated
// uploads of the same filename never collide.
func UploadToStorage(data []byte, filename, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)
	url := fmt.Sprintf("%s/%s/%s", config.AppConfig.StorageURL, config.AppConfig.StorageZone, key)

	client := resty.New()
	resp, err := client.R().
		SetHeader("AccessKey", config.AppConfig.StorageAccessKey).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(url)
	if err != nil {
		log.Printf("Storage upload failed: %v", err)
		return "", err
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("Storage upload rejected: %s", resp.String())
		return "", fmt.Errorf("storage upload failed with status %d", resp.StatusCode())
	}

	return key, nil
}
