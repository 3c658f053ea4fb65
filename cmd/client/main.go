package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"video-gallery/internal/client"
)

func main() {
	server := flag.String("server", "http://localhost:3000/api/v1", "Server base URL")
	mode := flag.String("mode", "upload", "Operation: upload | image | list | download | delete | social")
	filePath := flag.String("file", "", "Path of the file to upload")
	title := flag.String("title", "", "Video title")
	description := flag.String("description", "", "Video description")
	token := flag.String("token", os.Getenv("GALLERY_TOKEN"), "Bearer token (or GALLERY_TOKEN env)")
	publicID := flag.String("public-id", "", "Public ID for download/delete/social")
	destDir := flag.String("dest", ".", "Destination directory for downloads")
	flag.Parse()

	switch *mode {
	case "upload":
		runUploadVideo(*server, *token, *filePath, *title, *description)
	case "image":
		runUploadImage(*server, *token, *filePath)
	case "list":
		runList(*server, *token)
	case "download":
		runDownload(*server, *token, *publicID, *destDir)
	case "delete":
		runDelete(*server, *token, *publicID)
	case "social":
		runSocial(*server, *token, *publicID)
	default:
		log.Fatalf("unknown mode: %s", *mode)
	}
}

func runUploadVideo(server, token, filePath, title, description string) {
	if filePath == "" {
		log.Fatal("-file is required")
	}
	if title == "" {
		log.Fatal("-title is required")
	}

	uploader := client.NewUploader(server, token)
	uploader.OnProgress = printProgress

	if err := uploader.SelectFile(filePath, client.ModeVideo); err != nil {
		log.Fatalf("file selection failed: %v", err)
	}
	if uploader.State() == client.StateRejected {
		log.Fatalf("file rejected: %s", uploader.RejectedReason())
	}

	video, err := uploader.UploadVideo(title, description)
	if err != nil {
		fmt.Println()
		fatalUploadError(err)
	}

	fmt.Println()
	fmt.Printf("Uploaded: %s\n", video.Title)
	fmt.Printf("  Public ID:  %s\n", video.PublicID)
	fmt.Printf("  Original:   %s\n", video.OriginalSizeLabel)
	fmt.Printf("  Compressed: %s\n", video.CompressedSizeLabel)
	if video.SavedPercent != nil {
		fmt.Printf("  Saved:      %d%%\n", *video.SavedPercent)
	}
	fmt.Printf("  Duration:   %s\n", video.DurationLabel)
}

func runUploadImage(server, token, filePath string) {
	if filePath == "" {
		log.Fatal("-file is required")
	}

	uploader := client.NewUploader(server, token)
	uploader.OnProgress = printProgress

	if err := uploader.SelectFile(filePath, client.ModeImage); err != nil {
		log.Fatalf("file selection failed: %v", err)
	}
	if uploader.State() == client.StateRejected {
		log.Fatalf("file rejected: %s", uploader.RejectedReason())
	}

	image, err := uploader.UploadImage()
	if err != nil {
		fmt.Println()
		fatalUploadError(err)
	}

	fmt.Println()
	fmt.Printf("Uploaded image: %s\n", image.PublicID)
	fmt.Printf("  URL: %s\n", image.URL)
}

func runList(server, token string) {
	api := client.NewAPI(server, token)
	videos, err := api.ListVideos()
	if err != nil {
		fatalUploadError(err)
	}
	if len(videos) == 0 {
		fmt.Println("No videos uploaded yet.")
		return
	}
	for _, v := range videos {
		saved := "-"
		if v.SavedPercent != nil {
			saved = fmt.Sprintf("%d%%", *v.SavedPercent)
		}
		fmt.Printf("%-30s  %-12s  %8s -> %8s  saved %s\n",
			v.Title, v.DurationLabel, v.OriginalSizeLabel, v.CompressedSizeLabel, saved)
		fmt.Printf("  public_id: %s\n", v.PublicID)
	}
}

func runDownload(server, token, publicID, destDir string) {
	if publicID == "" {
		log.Fatal("-public-id is required")
	}

	api := client.NewAPI(server, token)
	videos, err := api.ListVideos()
	if err != nil {
		fatalUploadError(err)
	}
	for _, v := range videos {
		if v.PublicID != publicID {
			continue
		}
		dest, err := client.Download(v.DownloadURL, v.Title, destDir)
		if err != nil {
			var fallback *client.DownloadFallbackError
			if errors.As(err, &fallback) {
				log.Fatalf("download failed, open the URL in a browser instead:\n  %s", fallback.URL)
			}
			log.Fatalf("download failed: %v", err)
		}
		fmt.Printf("Saved to %s\n", dest)
		return
	}
	log.Fatalf("video not found: %s", publicID)
}

func runDelete(server, token, publicID string) {
	if publicID == "" {
		log.Fatal("-public-id is required")
	}

	fmt.Printf("Delete %s? This cannot be undone. [y/N]: ", publicID)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Println("Aborted.")
		return
	}

	api := client.NewAPI(server, token)
	if err := api.DeleteVideo(publicID); err != nil {
		fatalUploadError(err)
	}
	fmt.Println("Deleted.")
}

func runSocial(server, token, publicID string) {
	if publicID == "" {
		log.Fatal("-public-id is required")
	}

	api := client.NewAPI(server, token)
	resp, err := api.SocialImages(publicID)
	if err != nil {
		fatalUploadError(err)
	}
	for _, f := range resp.Formats {
		fmt.Printf("%-22s %4dx%-4d  %s\n", f.Label, f.Width, f.Height, f.URL)
	}
}

func printProgress(percent int) {
	fmt.Printf("\rUploading... %3d%%", percent)
}

func fatalUploadError(err error) {
	var uploadErr *client.UploadError
	if errors.As(err, &uploadErr) {
		log.Fatalf("[%s] %s", uploadErr.Category, uploadErr.Message)
	}
	log.Fatalf("error: %v", err)
}
