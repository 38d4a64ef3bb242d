package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/hook"
	"github.com/spf13/cobra"
)

func newMountsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mounts",
		Short: "List configured mounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range a.table.Names() {
				v, _ := a.table.View(name)
				write := "ro"
				if v.IsFeatureSupported(core.FeatureWrite) {
					write = "rw"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, write, v.Describe())
			}
			return w.Flush()
		},
	}
}

func newLsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [mount:path]",
		Short: "List a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			v, path, err := a.table.Resolve(ref)
			if err != nil {
				return err
			}
			entries, err := v.ListDirectory(path)
			if err != nil {
				return err
			}
			for _, e := range entries {
				kind := "f"
				if e.IsDir() {
					kind = "d"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", kind, e.Name)
			}
			return nil
		},
	}
}

func newStatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat mount:path",
		Short: "Show what a path resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, path, err := a.table.Resolve(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case v.IsFile(path):
				fmt.Fprintf(out, "file %d %s\n", v.Filesize(path), path)
			case v.IsDirectory(path, true):
				fmt.Fprintf(out, "directory %s\n", path)
			default:
				return errors.WithContext(errors.New(errors.CodeNotFound, "no such file or directory"), "path", args[0])
			}
			return nil
		},
	}
}

func newCatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat mount:path...",
		Short: "Write files to standard output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ref := range args {
				v, path, err := a.table.Resolve(ref)
				if err != nil {
					return err
				}
				in, err := v.OpenInputStream(path)
				if err != nil {
					return err
				}
				_, err = io.Copy(cmd.OutOrStdout(), in)
				closeQuietly(in)
				if err != nil {
					return errors.Wrap(err, errors.CodeIO, "copy to stdout")
				}
			}
			return nil
		},
	}
}

func newCpCommand(a *app) *cobra.Command {
	var appendMode bool
	cmd := &cobra.Command{
		Use:   "cp source destination",
		Short: "Copy a file between mounts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, srcPath, err := a.table.Resolve(args[0])
			if err != nil {
				return err
			}
			dst, dstPath, err := a.table.Resolve(args[1])
			if err != nil {
				return err
			}

			in, err := src.OpenInputStream(srcPath)
			if err != nil {
				return err
			}
			defer closeQuietly(in)

			mode := core.DefaultWriteMode
			if appendMode {
				mode = core.ModeWrite | core.ModeAppend
			}
			out, err := dst.OpenOutputStream(dstPath, mode)
			if err != nil {
				return err
			}
			n, err := io.Copy(out, in)
			if closeErr := out.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return errors.Wrap(err, errors.CodeIO, "copy")
			}
			a.log().Info("copied", "from", args[0], "to", args[1], "bytes", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&appendMode, "append", "a", false, "append to the destination instead of truncating it")
	return cmd
}

func newProbeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe [mount]",
		Short: "Detect game hooks on a mount",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0] + ":"
			}
			v, path, err := a.table.Resolve(ref)
			if err != nil {
				return err
			}
			detected := hook.Detect(v.Subtree(path), hook.WithLogger(a.log()))
			if fs, ok := detected.Backend().(*hook.FS); ok {
				fmt.Fprintln(cmd.OutOrStdout(), fs.Hook().String())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		},
	}
}
