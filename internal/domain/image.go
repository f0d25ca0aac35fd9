package domain

import "strings"

// Image описывает изображение товара, которое хранится в S3
type Image struct {
	Bucket    string
	ObjectKey string
}

func NewImage(bucket string, objectKey string) *Image {
	return &Image{
		Bucket:    bucket,
		ObjectKey: objectKey,
	}
}

// IsObjectKey сообщает, является ли ссылка на изображение ключом объекта в хранилище.
// Абсолютные URL и пути от корня сайта ("/placeholder.svg") отдаются клиенту как есть.
func IsObjectKey(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "/") {
		return false
	}

	return !strings.Contains(ref, "://") && !strings.HasPrefix(ref, "data:")
}
