// Package qr декодирует QR-код карты из сырых байтов изображения.
package qr

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Decoder может быть выключен конфигом (QR_ENABLED=false) — тогда Decode
// всегда отвечает "не распознано", а сценарии просят ввести код текстом.
type Decoder struct {
	enabled bool
}

func New(enabled bool) *Decoder { return &Decoder{enabled: enabled} }

func (d *Decoder) Enabled() bool { return d.enabled }

// Decode возвращает первую распознанную текстовую полезную нагрузку или "".
// Любая ошибка декодирования — тоже "": пользователя переспросят текстом.
func (d *Decoder) Decode(imageBytes []byte) string {
	if !d.enabled {
		return ""
	}
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return ""
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return ""
	}
	res, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(res.GetText())
}
