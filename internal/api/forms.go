package api

import (
	"errors"
	"net/http"

	"github.com/trouvaille/lostfound/internal/model"
)

var errImageTooLarge = errors.New("image exceeds the 10 MiB limit")

// formValue distinguishes an absent field from an empty one so partial
// updates only touch what the client actually sent.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

func foundUpdateFromForm(r *http.Request) model.FoundItemUpdate {
	return model.FoundItemUpdate{
		Description: formValue(r, "description"),
		FoundDate:   formValue(r, "found_date"),
		FoundTime:   formValue(r, "found_time"),
		Location:    formValue(r, "location"),
		ContentInfo: formValue(r, "content_info"),
	}
}
