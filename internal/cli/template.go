package cli

import (
	"log/slog"

	"github.com/information-sharing-networks/rightsignature-go/pkg/rightsignature"
	"github.com/spf13/cobra"
)

type pageOutput struct {
	Items       []rightsignature.Node `json:"items"`
	Total       int                   `json:"total"`
	TotalPages  int                   `json:"total_pages"`
	CurrentPage int                   `json:"current_page"`
	PerPage     int                   `json:"per_page"`
}

func newPageOutput(p *rightsignature.Page) pageOutput {
	items := p.Items
	if items == nil {
		items = []rightsignature.Node{}
	}
	return pageOutput{
		Items:       items,
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
	}
}

type documentRef struct {
	DocumentGUID string `json:"document_guid"`
}

func newTemplateCmd(a *app) *cobra.Command {
	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Work with templates",
		Long:  `Inspect RightSignature templates and create documents from them`,
	}

	var field string
	getCmd := &cobra.Command{
		Use:   "get <guid>",
		Short: "Show a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := a.client.Template(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			n, err := tpl.Get(field)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), n)
		},
	}
	getCmd.Flags().StringVarP(&field, "field", "f", "", "Only print this field of the template")

	var listOpts rightsignature.TemplateListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := a.client.Template(cmd.Context(), "")
			if err != nil {
				return err
			}
			page, err := tpl.List(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newPageOutput(page))
		},
	}
	listCmd.Flags().IntVar(&listOpts.Page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listOpts.PerPage, "per-page", 10, "Templates per page")
	listCmd.Flags().StringVar(&listOpts.Search, "search", "", "Search string")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := a.client.Template(cmd.Context(), "")
			if err != nil {
				return err
			}
			count, err := tpl.Count(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), count)
		},
	}

	var callback string
	prepackageCmd := &cobra.Command{
		Use:   "prepackage <guid>...",
		Short: "Clone a template or merge several into a new template",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := a.client.Template(cmd.Context(), "")
			if err != nil {
				return err
			}
			if _, err := tpl.Prepackage(cmd.Context(), callback, args...); err != nil {
				return err
			}
			n, err := tpl.Get("")
			if err != nil {
				return err
			}
			a.appLogger.Info("Template prepackaged", slog.String("guid", n.Get("guid").String()))
			return printJSON(cmd.OutOrStdout(), n)
		},
	}
	prepackageCmd.Flags().StringVar(&callback, "callback", "", "Callback URL for documents created from the template")

	var prefillOptionsFile string
	prefillCmd := &cobra.Command{
		Use:   "prefill <guid>",
		Short: "Prefill a template",
		Long:  `Prefill a template's roles, merge fields and tags. Options are read from a JSON file using the API's option names.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts rightsignature.PrefillOptions
			if err := readOptions(a.fs, prefillOptionsFile, &opts); err != nil {
				return err
			}
			tpl, err := a.client.Template(cmd.Context(), "")
			if err != nil {
				return err
			}
			if _, err := tpl.Prefill(cmd.Context(), opts, args[0]); err != nil {
				return err
			}
			n, err := tpl.Get("")
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), n)
		},
	}
	prefillCmd.Flags().StringVarP(&prefillOptionsFile, "options", "o", "", "JSON file with prefill options")

	var sendOptionsFile string
	prefillSendCmd := &cobra.Command{
		Use:   "prefill-send <guid>",
		Short: "Prefill a template and send it as a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts rightsignature.PrefillOptions
			if err := readOptions(a.fs, sendOptionsFile, &opts); err != nil {
				return err
			}
			tpl, err := a.client.Template(cmd.Context(), "")
			if err != nil {
				return err
			}
			doc, err := tpl.PrefillAndSend(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			a.appLogger.Info("Template sent", slog.String("template", args[0]), slog.String("document", doc.GUID()))
			return printJSON(cmd.OutOrStdout(), documentRef{DocumentGUID: doc.GUID()})
		},
	}
	prefillSendCmd.Flags().StringVarP(&sendOptionsFile, "options", "o", "", "JSON file with prefill options")

	var swapOptionsFile string
	swapCmd := &cobra.Command{
		Use:   "swap <guid> <file>",
		Short: "Replace a template's underlying document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts rightsignature.PrefillOptions
			if err := readOptions(a.fs, swapOptionsFile, &opts); err != nil {
				return err
			}
			tpl, err := a.client.Template(cmd.Context(), "")
			if err != nil {
				return err
			}
			doc, err := tpl.SwapTemplate(cmd.Context(), args[1], opts, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), documentRef{DocumentGUID: doc.GUID()})
		},
	}
	swapCmd.Flags().StringVarP(&swapOptionsFile, "options", "o", "", "JSON file with prefill options")

	templateCmd.AddCommand(getCmd, listCmd, countCmd, prepackageCmd, prefillCmd, prefillSendCmd, swapCmd)
	return templateCmd
}
