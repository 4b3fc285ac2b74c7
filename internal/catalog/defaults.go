package catalog

import "github.com/aurakai/gatenav/internal/carousel"

// Regions in carousel order.
const (
	RegionAuraLab     = "aura-lab"
	RegionGenesisCore = "genesis-core"
	RegionKai         = "kai"
	RegionAgentNexus  = "agent-nexus"
	RegionSupport     = "support"
)

// RegionOrder lists regions in the order their gates appear.
var RegionOrder = []string{RegionAuraLab, RegionGenesisCore, RegionKai, RegionAgentNexus, RegionSupport}

// Defaults returns the built-in gate list. Routes that touch root, ROM or
// framework hooks are protected.
func Defaults() Catalog {
	return Catalog{gates: []carousel.Gate{
		{ID: "auras-lab", Route: "auras_lab", Title: "Aura's Lab", Region: RegionAuraLab, Accent: "#f5c2e7",
			Description: "Sandbox for UI components and experimental features. Test and prototype new designs."},
		{ID: "chroma-core", Route: "chromacore_colors", Title: "ChromaCore", Region: RegionAuraLab, Accent: "#cba6f7",
			Description: "Pure color customization: color schemes, palettes, and live preview."},
		{ID: "theme-engine", Route: "theme_engine", Title: "Theme Engine", Region: RegionAuraLab, Accent: "#b4befe",
			Description: "Complete UI/UX theme engine with layout templates, presets, and device-wide theming."},

		{ID: "oracle-drive", Route: "oracle_drive", Title: "Oracle Drive", Region: RegionGenesisCore, Accent: "#89b4fa", Protected: true,
			Description: "Main module creation, direct AI access, and system overrides. The heart of Genesis."},
		{ID: "rom-tools", Route: "rom_tools", Title: "ROM Tools", Region: RegionGenesisCore, Accent: "#fab387", Protected: true,
			Description: "Live ROM editing, flashing, and bootloader management. Advanced users only."},
		{ID: "root-access", Route: "root_tools_toggles", Title: "Root Tools", Region: RegionGenesisCore, Accent: "#f38ba8", Protected: true,
			Description: "Quick toggles for root operations: bootloader, recovery, system partition, and Magisk modules."},

		{ID: "sentinels-fortress", Route: "sentinels_fortress", Title: "Sentinel's Fortress", Region: RegionKai, Accent: "#74c7ec", Protected: true,
			Description: "Security command center with firewall, threat monitoring, and all security protocols."},
		{ID: "agent-hub", Route: "agent_hub", Title: "Agent Hub", Region: RegionKai, Accent: "#94e2d5",
			Description: "Central hub for managing all AI agents. Monitor status, assign tasks, and view performance metrics."},

		{ID: "code-assist", Route: "code_assist", Title: "Code Assist", Region: RegionAgentNexus, Accent: "#a6e3a1",
			Description: "AI-powered coding assistant. Get intelligent code suggestions and automated refactoring."},
		{ID: "collab-canvas", Route: "collab_canvas", Title: "CollabCanvas", Region: RegionAgentNexus, Accent: "#f9e2af", ComingSoon: true,
			Description: "Collaborative design environment. Create and share projects with your team in real-time."},
		{ID: "sphere-grid", Route: "sphere_grid", Title: "Sphere Grid", Region: RegionAgentNexus, Accent: "#eba0ac", ComingSoon: true,
			Description: "Agent progression visualization. Track skill development and unlock new capabilities."},

		{ID: "help-desk", Route: "help_desk", Title: "Help Desk", Region: RegionSupport, Accent: "#89dceb",
			Description: "User support, FAQs, and documentation."},
		{ID: "terminal", Route: "terminal", Title: "Terminal", Region: RegionSupport, Accent: "#a6adc8",
			Description: "Direct system terminal access. Execute commands and manage system processes."},
		{ID: "system-journal", Route: "system_journal", Title: "System Journal", Region: RegionSupport, Accent: "#f2cdcd",
			Description: "User profile selection and quick menu access."},
		{ID: "lsposed-gate", Route: "xposed_panel", Title: "Xposed Panel", Region: RegionSupport, Accent: "#f5e0dc", Protected: true,
			Description: "Quick access panel for LSPosed and Xposed. Enable or disable modules, view hooks, and restart the framework."},
		{ID: "uiux-design-studio", Route: "uiux_design_studio", Title: "UI/UX Design Studio", Region: RegionSupport, Accent: "#cdd6f4",
			Description: "Comprehensive UI/UX design tools for creating beautiful interfaces."},
	}}
}
