package main

import (
	"context"
	"io"
	"os"

	"github.com/Abraxas-365/mailbatch/pkg/asyncx"
	"github.com/Abraxas-365/mailbatch/pkg/campaign"
	"github.com/Abraxas-365/mailbatch/pkg/config"
	"github.com/Abraxas-365/mailbatch/pkg/dispatch"
	"github.com/Abraxas-365/mailbatch/pkg/fsx"
	"github.com/Abraxas-365/mailbatch/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/mailbatch/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/mailbatch/pkg/logx"
	"github.com/Abraxas-365/mailbatch/pkg/notifx"
	"github.com/Abraxas-365/mailbatch/pkg/notifx/notifxconsole"
	"github.com/Abraxas-365/mailbatch/pkg/notifx/notifxses"
	"github.com/Abraxas-365/mailbatch/pkg/notifx/notifxsmtp"
	"github.com/Abraxas-365/mailbatch/pkg/roster"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/google/uuid"
)

// Container is the composition root. It owns the infrastructure of one run
// and is the only place that knows about every package.
type Container struct {
	Config *config.Config
	RunID  string
	Logger *logx.Logger

	Generator *campaign.Generator
	Sender    notifx.EmailSender

	awsCfg   *aws.Config
	s3Client *s3.Client
	closers  []io.Closer
}

// NewContainer wires logging and content generation. The mail provider is
// wired separately by initMail since preview never sends.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		RunID:  uuid.NewString(),
	}

	c.initLogging()
	c.Logger.WithField("run_id", c.RunID).Debug("initializing container")

	if err := c.initCampaign(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initLogging() {
	c.Logger = logx.NewLogger(c.Config.Log.LoggerConfig(os.Stderr))
	logx.SetDefaultLogger(c.Logger)
}

func (c *Container) initCampaign(ctx context.Context) error {
	tables := campaign.DefaultTables()

	if p := c.Config.Campaign.TablesPath; p != "" {
		reader, key, err := c.fileSystem(ctx, p)
		if err != nil {
			return err
		}
		data, err := reader.ReadFile(ctx, key)
		if err != nil {
			return err
		}
		if tables, err = campaign.LoadTables(data); err != nil {
			return err
		}
		c.Logger.WithField("path", p).Info("localization tables loaded")
	}

	g, err := campaign.NewGenerator(tables)
	if err != nil {
		return err
	}
	c.Generator = g
	return nil
}

// initMail selects the provider. A dry run always uses the console provider.
func (c *Container) initMail(ctx context.Context, showBody bool) error {
	mail := c.Config.Mail
	provider := mail.Provider
	if c.Config.Dispatch.DryRun {
		provider = config.ProviderConsole
	}

	switch provider {
	case config.ProviderSMTP:
		p := notifxsmtp.NewSMTPProvider(notifxsmtp.Config{
			Host:     mail.SMTP.Host,
			Port:     mail.SMTP.Port,
			Username: mail.SMTP.Username,
			Password: mail.SMTP.Password,
		}, mail.FromAddress)
		c.closers = append(c.closers, p)
		c.Sender = p

	case config.ProviderSES:
		awsCfg, err := c.aws(ctx)
		if err != nil {
			return err
		}
		client := ses.NewFromConfig(*awsCfg, func(o *ses.Options) {
			o.Region = c.Config.SESRegion()
		})
		c.Sender = notifxses.NewSESProvider(client, mail.FromAddress)

	default:
		opts := []notifxconsole.Option{notifxconsole.WithLogger(c.Logger)}
		if showBody {
			opts = append(opts, notifxconsole.WithBody())
		}
		c.Sender = notifxconsole.NewConsoleProvider(opts...)
	}

	c.Logger.WithFields(logx.Fields{
		"provider": provider,
		"from":     mail.FromAddress,
	}).Info("mail provider configured")
	return nil
}

// Transport wraps the sender with validation, the sender address and the
// run tags.
func (c *Container) Transport() dispatch.Transport {
	mail := c.Config.Mail
	from := notifx.FormatAddress(mail.FromName, mail.FromAddress)

	defaults := []notifx.Option{notifx.WithTags(map[string]string{"run_id": c.RunID})}
	if mail.SES.ConfigurationSet != "" {
		defaults = append(defaults, notifx.WithConfigID(mail.SES.ConfigurationSet))
	}

	client := notifx.NewClient(c.Sender,
		notifx.WithDefaultFrom(from),
		notifx.WithDefaultOptions(defaults...),
	)
	return dispatch.NewNotifxTransport(client, "")
}

// Pacer returns the send pacing policy. A rate takes precedence over the
// fixed delay.
func (c *Container) Pacer() asyncx.Pacer {
	d := c.Config.Dispatch
	if d.Rate > 0 {
		return asyncx.TokenBucket(d.Rate, d.Burst)
	}
	return asyncx.FixedDelay(d.Delay)
}

// Roster returns a reader for the configured source and the key to read.
func (c *Container) Roster(ctx context.Context) (*roster.Reader, string, error) {
	src := c.Config.Source
	reader, key, err := c.fileSystem(ctx, src.Path)
	if err != nil {
		return nil, "", err
	}
	return roster.NewReader(reader,
		roster.WithColumns(src.Columns),
		roster.WithSheet(src.Sheet),
	), key, nil
}

// fileSystem resolves raw to a backend and the path within it.
func (c *Container) fileSystem(ctx context.Context, raw string) (fsx.FileReader, string, error) {
	loc, err := fsx.ParseLocation(raw)
	if err != nil {
		return nil, "", err
	}

	if loc.Scheme == fsx.SchemeS3 {
		if c.s3Client == nil {
			awsCfg, err := c.aws(ctx)
			if err != nil {
				return nil, "", err
			}
			c.s3Client = s3.NewFromConfig(*awsCfg)
		}
		return fsxs3.NewS3FileSystem(c.s3Client, loc.Bucket, ""), loc.Path, nil
	}

	local, err := fsxlocal.NewLocalFileSystem("")
	if err != nil {
		return nil, "", err
	}
	return local, loc.Path, nil
}

func (c *Container) aws(ctx context.Context) (*aws.Config, error) {
	if c.awsCfg != nil {
		return c.awsCfg, nil
	}
	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(c.Config.AWS.Region))
	if err != nil {
		return nil, errAWS(err)
	}
	c.awsCfg = &cfg
	return c.awsCfg, nil
}

// Cleanup releases open sessions.
func (c *Container) Cleanup() {
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			c.Logger.WithError(err).Warn("error closing mail session")
		}
	}
}
