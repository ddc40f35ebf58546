package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newSocialsCmd(opts *rootOptions) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "socials",
		Short: "List social links in display order",
		Long: `List the social links a page would render: active links in declared
order. Use --all to include inactive links.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.load()
			if err != nil {
				return err
			}
			links := reg.ActiveSocials()
			if all {
				links = reg.Socials()
			}
			if opts.jsonOutput {
				return opts.out.JSON(links)
			}
			table := make([][]string, 0, len(links))
			for i, l := range links {
				table = append(table, []string{
					strconv.Itoa(i + 1),
					string(l.Name),
					l.Href,
					l.LinkTitle,
					yesNo(l.Active),
				})
			}
			opts.out.Table([]string{"#", "NAME", "HREF", "TITLE", "ACTIVE"}, table)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include inactive links")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
