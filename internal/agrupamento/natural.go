package agrupamento

// CompararNatural compara strings tratando sequências de dígitos como
// números ("2" < "10", "A2" < "A10"). Empates de valor numérico com zeros à
// esquerda caem na comparação textual. Retorna -1, 0 ou 1.
func CompararNatural(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigito(ca) && isDigito(cb) {
			// Delimita os dois blocos numéricos.
			ia := i
			for i < len(a) && isDigito(a[i]) {
				i++
			}
			jb := j
			for j < len(b) && isDigito(b[j]) {
				j++
			}
			na := semZeros(a[ia:i])
			nb := semZeros(b[jb:j])
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	}
	return 0
}

func isDigito(c byte) bool {
	return c >= '0' && c <= '9'
}

func semZeros(s string) string {
	k := 0
	for k < len(s)-1 && s[k] == '0' {
		k++
	}
	return s[k:]
}
