package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/information-sharing-networks/rightsignature-go/pkg/rightsignature"
	"github.com/spf13/cobra"
)

func newDocumentCmd(a *app) *cobra.Command {
	documentCmd := &cobra.Command{
		Use:   "document",
		Short: "Work with documents",
		Long:  `Send and manage RightSignature documents`,
	}

	var field string
	getCmd := &cobra.Command{
		Use:   "get <guid>",
		Short: "Show a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Document(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			n, err := doc.Get(field)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), n)
		},
	}
	getCmd.Flags().StringVarP(&field, "field", "f", "", "Only print this field of the document")

	var listOpts rightsignature.DocumentListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			page, err := doc.List(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newPageOutput(page))
		},
	}
	listCmd.Flags().IntVar(&listOpts.Page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listOpts.PerPage, "per-page", 10, "Documents per page")
	listCmd.Flags().StringVar(&listOpts.Search, "search", "", "Search string")
	listCmd.Flags().StringVar(&listOpts.State, "state", "", "Only list documents in this state (e.g. pending, completed)")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			count, err := doc.Count(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), count)
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch <guid>...",
		Short: fmt.Sprintf("Show up to %d documents at once", rightsignature.MaxBatchDetails),
		Args:  cobra.RangeArgs(1, rightsignature.MaxBatchDetails),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			docs, err := doc.BatchDetails(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), docs)
		},
	}

	trashCmd := &cobra.Command{
		Use:   "trash <guid>",
		Short: "Move a document to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			ok, err := doc.Trash(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.appLogger.Info("Trash document", slog.String("guid", args[0]), slog.Bool("ok", ok))
			return printStatus(cmd.OutOrStdout(), ok)
		},
	}

	extendCmd := &cobra.Command{
		Use:   "extend <guid>",
		Short: "Extend a document's expiration date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			ok, err := doc.ExtendExpiration(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), ok)
		},
	}

	var tagArgs []string
	tagsCmd := &cobra.Command{
		Use:   "tags <guid>",
		Short: "Replace a document's tags",
		Long:  `Replace a document's tags. Each --tag is either name or name=value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := parseTags(tagArgs)
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			ok, err := doc.UpdateTags(cmd.Context(), tags, args[0])
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), ok)
		},
	}
	tagsCmd.Flags().StringArrayVarP(&tagArgs, "tag", "t", nil, "Tag as name or name=value (repeatable)")

	var sendOptionsFile string
	sendCmd := &cobra.Command{
		Use:   "send <file>",
		Short: "Upload a file and send it for signature",
		Long:  `Upload a file and send it for signature. Recipients and other options are read from a JSON file using the API's option names.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts rightsignature.SendOptions
			if err := readOptions(a.fs, sendOptionsFile, &opts); err != nil {
				return err
			}
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			ok, err := doc.Send(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			a.appLogger.Info("Send document",
				slog.String("file", args[0]),
				slog.Int("recipients", len(opts.Recipients)),
				slog.Bool("ok", ok),
			)
			return printStatus(cmd.OutOrStdout(), ok)
		},
	}
	sendCmd.Flags().StringVarP(&sendOptionsFile, "options", "o", "", "JSON file with send options")

	callbackCmd := &cobra.Command{
		Use:   "callback <guid> <url>",
		Short: "Set a document's callback URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			ok, err := doc.UpdateCallback(cmd.Context(), args[1], args[0])
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), ok)
		},
	}

	signerLinksCmd := &cobra.Command{
		Use:   "signer-links <guid>",
		Short: "Show embedded signing links for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Document(cmd.Context(), "")
			if err != nil {
				return err
			}
			links, err := doc.SignerLinks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), links)
		},
	}

	documentCmd.AddCommand(getCmd, listCmd, countCmd, batchCmd, trashCmd, extendCmd, tagsCmd, sendCmd, callbackCmd, signerLinksCmd)
	return documentCmd
}

// parseTags turns name or name=value arguments into tags
func parseTags(args []string) []rightsignature.Tag {
	tags := make([]rightsignature.Tag, 0, len(args))
	for _, arg := range args {
		name, value, _ := strings.Cut(arg, "=")
		tags = append(tags, rightsignature.Tag{Name: name, Value: value})
	}
	return tags
}
