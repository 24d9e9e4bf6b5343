package files

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const thumbnailWidth = 320

type FileService struct {
	botAPI   *tgbotapi.BotAPI
	mediaDir string
}

func NewFileService(botAPI *tgbotapi.BotAPI, mediaDir string) (*FileService, error) {
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return nil, fmt.Errorf("FileService: cannot create dir %s: %w", mediaDir, err)
	}

	return &FileService{
		botAPI:   botAPI,
		mediaDir: mediaDir,
	}, nil
}

// SaveFile скачивает файл из Telegram и сохраняет локальную копию.
// Для изображений дополнительно кладёт рядом jpeg-миниатюру.
func (fs *FileService) SaveFile(fileID string) (string, error) {
	file, err := fs.botAPI.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("FileService.SaveFile: cannot get file: %w", err)
	}

	fileExt := filepath.Ext(file.FilePath)
	if fileExt == "" {
		fileExt = ".jpg"
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), fileExt)
	filePath := filepath.Join(fs.mediaDir, fileName)

	resp, err := http.Get(file.Link(fs.botAPI.Token))
	if err != nil {
		return "", fmt.Errorf("FileService.SaveFile: cannot download file: %w", err)
	}

	defer resp.Body.Close()

	out, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("FileService.SaveFile: cannot create file: %w", err)
	}

	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	if err != nil {
		return "", fmt.Errorf("FileService.SaveFile: cannot save file: %w", err)
	}

	if isImageExt(fileExt) {
		if err := writeThumbnail(filePath, fileExt); err != nil {
			// Оригинал уже на диске, миниатюра не обязательна
			log.Printf("FileService.SaveFile: cannot write thumbnail for %s: %v", filePath, err)
		}
	}

	return filePath, nil
}

func isImageExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png":
		return true
	}

	return false
}

func writeThumbnail(filePath string, fileExt string) error {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}

	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return err
	}

	thumb := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)

	thumbPath := strings.TrimSuffix(filePath, fileExt) + "_thumb.jpg"
	out, err := os.Create(thumbPath)
	if err != nil {
		return err
	}

	defer out.Close()

	return jpeg.Encode(out, thumb, nil)
}
