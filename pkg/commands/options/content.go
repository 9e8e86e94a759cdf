package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/app"
)

// ContentOptions carries the editable item fields as flags.
type ContentOptions struct {
	Description string
	ImageURL    string
	Category    string
}

func AddContentArgs(cmd *cobra.Command, o *ContentOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Describe the item.")
	cmd.Flags().StringVar(&o.ImageURL, "image", "",
		"Poster or cover image URL.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category label, example: Sci-Fi.")
}

// Fields assembles ItemFields for the runner. The title comes from the
// command arguments, not a flag.
func (o *ContentOptions) Fields(title string) app.ItemFields {
	return app.ItemFields{
		Title:       title,
		Description: o.Description,
		ImageURL:    o.ImageURL,
		Category:    o.Category,
	}
}
