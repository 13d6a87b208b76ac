package cmd

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"capres.dev/pkg/capres/internal/adapter"
	"capres.dev/pkg/capres/internal/controller"
	"capres.dev/pkg/capres/internal/domain"
	m "capres.dev/pkg/capres/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "capres"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	configFlagName   = "config"
	anchorFlagName   = "anchor"
	platformFlagName = "platform"
	verboseFlagName  = "verbose"
	formatFlagName   = "format"
	writeFlagName    = "write"
	noStageFlagName  = "no-stage"

	anchorKey    = "anchor"
	platformsKey = "platforms"

	sdkRootKey         = "sdk.root"
	sdkInterfaceDirKey = "sdk.interface_dir"
	sdkHeaderKey       = "sdk.header"
	sdkLibDirKey       = "sdk.lib_dir"
	sdkLibArchKey      = "sdk.lib_arch"
	sdkImportLibsKey   = "sdk.import_libs"
	sdkRuntimeArchKey  = "sdk.runtime_arch"
	sdkRuntimeLibKey   = "sdk.runtime_lib"

	featureNameKey              = "feature.name"
	featureFlagKey              = "feature.flag"
	featurePlatformsKey         = "feature.platforms"
	featureSystemLibrariesKey   = "feature.system_libraries"
	featureDelayLoadsKey        = "feature.delay_loads"
	featureDependencyModulesKey = "feature.dependency_modules"

	stageEnabledKey        = "stage.enabled"
	stageRootsKey          = "stage.roots"
	stageProjectKey        = "stage.project"
	stageProjectPatternKey = "stage.project_pattern"

	thirdPartyDirKey    = "thirdparty.dir"
	thirdPartySuffixKey = "thirdparty.suffix"
	thirdPartyBaseKey   = "thirdparty.base"

	companionNameKey      = "companion.name"
	companionFlagKey      = "companion.flag"
	companionPrimaryKey   = "companion.primary"
	companionSecondaryKey = "companion.secondary"

	outputFormatKey = "output.format"
	outputFileKey   = "output.file"

	envPrefix = "CAPRES"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultAnchor         = ""
	defaultStageRoot      = "."
	defaultSDKRoot        = "ThirdParty/NVENC"
	defaultFeatureName    = "nvenc"
	defaultFeatureFlag    = "WITH_OMNI_NVENC"
	defaultProjectPattern = "*.uproject"
	defaultCompanionName  = "openexr"
	defaultCompanionFlag  = "WITH_OMNICAPTURE_OPENEXR"
	defaultOutputFormat   = string(adapter.FormatYAML)

	defaultLogFilename   = ".capres.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

var envKeyReplacer = strings.NewReplacer("-", "_", ".", "_")

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)

	setDefaults()
	readDefaultConfig()
}

// readDefaultConfig loads capres.yaml from the working directory when present.
func readDefaultConfig() {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, iofs.ErrNotExist) {
			return
		}

		slog.Warn("failed to read config file", "file", viper.ConfigFileUsed(), "error", err)
	}
}

func setDefaults() {
	layout := domain.DefaultLayout()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(anchorKey, defaultAnchor)
	viper.SetDefault(platformsKey, []string{string(m.PlatformWin64)})

	viper.SetDefault(sdkRootKey, defaultSDKRoot)
	viper.SetDefault(sdkInterfaceDirKey, layout.InterfaceDir)
	viper.SetDefault(sdkHeaderKey, layout.Header)
	viper.SetDefault(sdkLibDirKey, layout.LibDir)
	viper.SetDefault(sdkLibArchKey, "")
	viper.SetDefault(sdkImportLibsKey, layout.ImportLibs)
	viper.SetDefault(sdkRuntimeArchKey, "")
	viper.SetDefault(sdkRuntimeLibKey, layout.RuntimeLib)

	viper.SetDefault(featureNameKey, defaultFeatureName)
	viper.SetDefault(featureFlagKey, defaultFeatureFlag)
	viper.SetDefault(featurePlatformsKey, []string{string(m.PlatformWin64)})
	viper.SetDefault(featureSystemLibrariesKey, []string{"mfplat.lib", "mfuuid.lib"})
	viper.SetDefault(featureDelayLoadsKey, []string{"Mfreadwrite.dll"})
	viper.SetDefault(featureDependencyModulesKey, []string{"AVEncoder", "D3D11RHI", "D3D12RHI"})

	viper.SetDefault(stageEnabledKey, true)
	viper.SetDefault(stageRootsKey, []string{defaultStageRoot})
	viper.SetDefault(stageProjectKey, "")
	viper.SetDefault(stageProjectPatternKey, defaultProjectPattern)

	viper.SetDefault(thirdPartyDirKey, "")
	viper.SetDefault(thirdPartySuffixKey, domain.DefaultDescriptorSuffix)
	viper.SetDefault(thirdPartyBaseKey, domain.DefaultModuleBase)

	viper.SetDefault(companionNameKey, defaultCompanionName)
	viper.SetDefault(companionFlagKey, defaultCompanionFlag)
	viper.SetDefault(companionPrimaryKey, []string{"OpenEXR", "OpenExr"})
	viper.SetDefault(companionSecondaryKey, []string{"Imath"})

	viper.SetDefault(outputFormatKey, defaultOutputFormat)
	viper.SetDefault(outputFileKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// readConfigFile loads an explicitly requested configuration file. Unlike the
// default lookup, a missing explicit file is an error.
func readConfigFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// runConfig is the configuration of one invocation, with every relative path
// resolved against the anchor.
type runConfig struct {
	Anchor     m.Path
	Feature    domain.FeatureSpec
	Companion  domain.CompanionSpec
	ThirdParty m.Path
	Suffix     string
	ModuleBase string
	// Project is the project root whose binaries directory is created before
	// linking. Empty when no project was configured or found.
	Project m.Path
}

func loadRunConfig(fs adapter.FSAdapter) (runConfig, error) {
	anchor, err := fs.Abs(m.Path(anchorDir()))
	if err != nil {
		return runConfig{}, fmt.Errorf("resolve anchor: %w", err)
	}

	project, err := loadProjectRoot(fs, anchor)
	if err != nil {
		return runConfig{}, err
	}

	roots := resolvePaths(anchor, viper.GetStringSlice(stageRootsKey))
	if project != "" && !containsPath(roots, project) {
		roots = append(roots, project)
	}

	thirdParty := m.Path("")
	if dir := strings.TrimSpace(viper.GetString(thirdPartyDirKey)); dir != "" {
		thirdParty = resolvePath(anchor, dir)
	}

	return runConfig{
		Anchor: anchor,
		Feature: domain.FeatureSpec{
			Name: viper.GetString(featureNameKey),
			Flag: viper.GetString(featureFlagKey),
			Root: resolvePath(anchor, viper.GetString(sdkRootKey)),
			Layout: domain.Layout{
				InterfaceDir: viper.GetString(sdkInterfaceDirKey),
				Header:       viper.GetString(sdkHeaderKey),
				LibDir:       viper.GetString(sdkLibDirKey),
				LibArch:      viper.GetString(sdkLibArchKey),
				ImportLibs:   viper.GetStringSlice(sdkImportLibsKey),
				RuntimeArch:  viper.GetString(sdkRuntimeArchKey),
				RuntimeLib:   viper.GetString(sdkRuntimeLibKey),
			},
			Platforms:         parsePlatforms(viper.GetStringSlice(featurePlatformsKey)),
			SystemLibraries:   viper.GetStringSlice(featureSystemLibrariesKey),
			DelayLoads:        viper.GetStringSlice(featureDelayLoadsKey),
			DependencyModules: viper.GetStringSlice(featureDependencyModulesKey),
			StagingRoots:      roots,
		},
		Companion: domain.CompanionSpec{
			Name:              viper.GetString(companionNameKey),
			Flag:              viper.GetString(companionFlagKey),
			PrimaryPrefixes:   viper.GetStringSlice(companionPrimaryKey),
			SecondaryPrefixes: viper.GetStringSlice(companionSecondaryKey),
		},
		ThirdParty: thirdParty,
		Suffix:     viper.GetString(thirdPartySuffixKey),
		ModuleBase: viper.GetString(thirdPartyBaseKey),
		Project:    project,
	}, nil
}

// anchorDir returns the configured anchor. Without one, relative paths resolve
// against the directory holding the config file, or the working directory when
// no file is in use.
func anchorDir() string {
	if anchor := strings.TrimSpace(viper.GetString(anchorKey)); anchor != "" {
		return anchor
	}

	if used := viper.ConfigFileUsed(); used != "" {
		return filepath.Dir(used)
	}

	return "."
}

// loadProjectRoot returns the configured project root, or searches upwards
// from the anchor for a project file when none is configured.
func loadProjectRoot(fs adapter.FSAdapter, anchor m.Path) (m.Path, error) {
	if project := strings.TrimSpace(viper.GetString(stageProjectKey)); project != "" {
		return resolvePath(anchor, project), nil
	}

	pattern := strings.TrimSpace(viper.GetString(stageProjectPatternKey))
	if pattern == "" {
		return "", nil
	}

	root, err := fs.FindProjectRoot(anchor, pattern)
	if err != nil {
		if errors.Is(err, adapter.ErrProjectNotFound) {
			slog.Debug("no project root found", "anchor", anchor, "pattern", pattern)
			return "", nil
		}

		return "", fmt.Errorf("find project root: %w", err)
	}

	return root, nil
}

func resolvePath(anchor m.Path, value string) m.Path {
	if filepath.IsAbs(value) {
		return m.Path(filepath.Clean(value))
	}

	return m.Path(filepath.Join(string(anchor), value))
}

func resolvePaths(anchor m.Path, values []string) []m.Path {
	paths := make([]m.Path, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}

		p := resolvePath(anchor, v)
		if !containsPath(paths, p) {
			paths = append(paths, p)
		}
	}

	return paths
}

func containsPath(paths []m.Path, p m.Path) bool {
	for _, existing := range paths {
		if existing == p {
			return true
		}
	}

	return false
}

// newWorkflow wires the domain services for cfg.
func newWorkflow(cfg runConfig, fs adapter.FSAdapter, out controller.UI) domain.Workflow {
	prober := domain.NewProber(fs, cfg.Feature.Layout)
	scanner := domain.NewScanner(fs, cfg.Suffix, cfg.ModuleBase)

	return domain.NewWorkflow(
		out,
		domain.NewConfigurator(cfg.Feature, prober),
		prober,
		domain.NewStager(fs),
		scanner,
		domain.NewCompanionResolver(cfg.Companion, scanner),
		cfg.ThirdParty,
	)
}
