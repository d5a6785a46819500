package products

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"jossy/db"
	"jossy/models"
	"jossy/rdx"
	"jossy/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var productPicDir = "./static/productpic"

// UploadProductImage accepts a multipart image, stores it under a uuid
// name with a thumbnail, and appends an IMAGE media entry to the product.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, handler) {
		return
	}
	ext := filepath.Ext(utils.SanitizeFilename(handler.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" && ext != ".gif" {
		http.Error(w, "Unsupported file type", http.StatusBadRequest)
		return
	}

	id := uuid.New().String()
	filename := fmt.Sprintf("%s%s", id, ext)
	path := filepath.Join(productPicDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		log.Println("UploadProductImage create error:", err)
		http.Error(w, "Unable to save file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		log.Println("UploadProductImage copy error:", err)
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	if err := createThumb(path, filepath.Join(productPicDir, id+"_thumb.jpg")); err != nil {
		// Thumbnail failure does not fail the upload.
		log.Println("UploadProductImage thumbnail error:", err)
	}

	entry := models.MediaItem{URL: "/static/productpic/" + filename, Type: models.MediaImage}
	res, err := db.ProductCollection.UpdateOne(ctx,
		bson.M{"productid": ps.ByName("productid")},
		bson.M{"$push": bson.M{"media": entry}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("UploadProductImage UpdateOne error:", err)
		http.Error(w, "Failed to attach image", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	rdx.InvalidateCatalog()
	utils.RespondWithJSON(w, http.StatusOK, entry)
}

// createThumb writes a 300px-wide thumbnail next to the original.
func createThumb(src, dst string) error {
	img, err := imaging.Open(src)
	if err != nil {
		return err
	}
	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	return imaging.Save(thumb, dst)
}
