package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/pagecraft-dev/pagecraft/internal/config"
	"github.com/pagecraft-dev/pagecraft/internal/publish"
)

func publishCmd() *cobra.Command {
	var (
		dir    string
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload a built site to S3",
		Long: `Upload every file of a built output directory to an S3 bucket.

Credentials come from the default AWS credential chain (environment,
shared config, instance role). All objects of one run share a deploy ID
recorded in their metadata.

Examples:
  pagecraft publish --bucket=my-site
  pagecraft publish --dir=public --bucket=my-site --prefix=prod --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), dir, bucket, prefix, region)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to upload (default from pagecraft.json)")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (default from pagecraft.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from pagecraft.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from pagecraft.json)")

	return cmd
}

func runPublish(ctx context.Context, dir, bucket, prefix, region string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.Output
	}
	if bucket == "" {
		bucket = cfg.Publish.Bucket
	}
	if prefix == "" {
		prefix = cfg.Publish.Prefix
	}
	if region == "" {
		region = cfg.Publish.Region
	}

	if bucket == "" {
		return fmt.Errorf("no bucket configured (use --bucket or pagecraft.json)")
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("output directory %s does not exist (build the site first)", dir)
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	publisher := publish.New(s3.NewFromConfig(awsCfg), bucket, prefix,
		publish.WithLogger(logger))

	info("uploading %s to s3://%s/%s", dir, bucket, prefix)
	deployID, count, err := publisher.Publish(ctx, dir)
	if err != nil {
		return err
	}

	success("published %d objects (deploy %s)", count, deployID)
	return nil
}
