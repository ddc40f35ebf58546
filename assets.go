package folio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math"
	"net/url"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/eringen/folio/internal/validate"
)

// rasterLogoNames are tried in order when LogoConfig.SVG is false.
var rasterLogoNames = []string{"logo.png", "logo.jpg", "logo.jpeg", "logo.webp", "logo.gif", "logo.bmp"}

const svgLogoName = "logo.svg"

// aspectTolerance is the relative difference between the asset's aspect
// ratio and Width/Height above which a warning is raised.
const aspectTolerance = 0.05

// AssetReport is the result of CheckAssets.
type AssetReport struct {
	LogoFile string   // asset that satisfied LogoConfig, if any
	Warnings []string // non-fatal findings
}

// CheckAssets verifies that the files referenced by the registry exist in
// fsys (typically the site's public/ directory). A missing or undecodable
// logo is an error only when the logo is enabled.
func CheckAssets(fsys fs.FS, r *Registry) (AssetReport, error) {
	var rep AssetReport
	v := validate.New()

	logo := r.Logo()
	if logo.Enable {
		if logo.SVG {
			if _, err := fs.Stat(fsys, svgLogoName); err != nil {
				v.AddError("logo.svg", fmt.Sprintf("%s not found: %v", svgLogoName, err), svgLogoName)
			} else {
				rep.LogoFile = svgLogoName
			}
		} else {
			name, cfg, err := findRasterLogo(fsys)
			if err != nil {
				v.AddError("logo.enable", err.Error(), true)
			} else {
				rep.LogoFile = name
				if w := aspectWarning(cfg, logo); w != "" {
					rep.Warnings = append(rep.Warnings, w)
				}
			}
		}
	}

	if og := localOGImage(r.Site().OGImage); og != "" {
		if _, err := fs.Stat(fsys, og); err != nil {
			v.AddError("site.ogImage", fmt.Sprintf("%s not found: %v", og, err), og)
		}
	}

	if err := v.Err(); err != nil {
		return rep, fmt.Errorf("folio: assets: %w", err)
	}
	return rep, nil
}

// findRasterLogo returns the first raster logo that decodes.
func findRasterLogo(fsys fs.FS) (string, image.Config, error) {
	var errs []error
	for _, name := range rasterLogoNames {
		f, err := fsys.Open(name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("decode %s: %w", name, err))
			continue
		}
		return name, cfg, nil
	}
	if len(errs) > 0 {
		return "", image.Config{}, errors.Join(errs...)
	}
	return "", image.Config{}, fmt.Errorf("no raster logo found (tried %s)", strings.Join(rasterLogoNames, ", "))
}

func aspectWarning(cfg image.Config, logo LogoConfig) string {
	if cfg.Height == 0 || logo.Height == 0 {
		return ""
	}
	want := float64(logo.Width) / float64(logo.Height)
	got := float64(cfg.Width) / float64(cfg.Height)
	if math.Abs(got-want)/want <= aspectTolerance {
		return ""
	}
	return fmt.Sprintf("logo asset is %dx%d, configured %dx%d; it will be distorted",
		cfg.Width, cfg.Height, logo.Width, logo.Height)
}

// localOGImage returns the fs path for a site-relative ogImage, or "" when
// the image is empty or remote.
func localOGImage(og string) string {
	og = strings.TrimSpace(og)
	if og == "" {
		return ""
	}
	if u, err := url.Parse(og); err != nil || u.IsAbs() || u.Host != "" {
		return ""
	}
	p := path.Clean(strings.TrimPrefix(og, "/"))
	if p == "." || strings.HasPrefix(p, "..") {
		return ""
	}
	return p
}
