package radicals

// Document is the explanatory note on simplifying radicals. It is written
// verbatim, LaTeX markup included.
const Document = `
# How to Simplify Radicals

The process of simplifying radicals relies on a foundational understanding of **factors** and **perfect squares**. 
By mastering these concepts, we can rewrite radicals in their simplest form.

### 1. What are Factors?

Factors are pairs of numbers that multiply together to produce a given number. For instance, let us consider the number 30. 
Its factors are:

1. 1 and 30
2. 2 and 15
3. 3 and 10

Understanding these pairs is crucial because factors play a central role in breaking down radicals.

---

### 2. What is a Radical?

A **radical** is a number expressed under a root symbol \( \sqrt{} \), most commonly a square root. For example:

\[
\sqrt{4} = 2 \quad \text{(since \( 2^2 = 4 \))}.
\]

Our task when simplifying radicals is to find equivalent expressions involving smaller radicals or none at all.

---

### 3. Steps to Simplify Radicals

#### Example: Simplify \( \sqrt{200} \)

1. **Find the Factors of 200**:
   To simplify \( \sqrt{200} \), we begin by listing its factors:
   - \( 1 \times 200 \)
   - \( 2 \times 100 \)
   - \( 4 \times 50 \)
   - \( 5 \times 40 \)
   - \( 8 \times 25 \)
   - \( 10 \times 20 \)

2. **Identify the Largest Perfect Square Factor**:
   A **perfect square** is a number that is the square of an integer (e.g., \( 4, 9, 16, 25, \) etc.). Among the factors of 200, the largest perfect square is 100.

3. **Rewrite Using the Perfect Square Factor**:
   Using the factorization \( 200 = 100 \times 2 \), we can rewrite \( \sqrt{200} \) as:
   \[
   \sqrt{200} = \sqrt{100 \times 2}.
   \]

4. **Simplify the Radical**:
   The square root of 100 is 10, so:
   \[
   \sqrt{200} = 10\sqrt{2}.
   \]

---

### 4. Key Observations

- The simplified radical form often pairs a larger number outside the radical with a smaller number remaining inside. For \( \sqrt{200} \), we see:
  \[
  \sqrt{200} = 10\sqrt{2}.
  \]
- The largest perfect square factor simplifies the process. Smaller perfect squares (e.g., 4 in \( 4 \times 50 \)) do not yield the most reduced form.

---

### 5. General Rule for Simplifying Radicals

To simplify \( \sqrt{n} \), follow these steps:
1. Factor \( n \) to identify its largest perfect square \( p^2 \).
2. Rewrite \( n = p^2 \times m \), where \( m \) is the remaining factor.
3. Simplify using \( \sqrt{p^2 \times m} = p\sqrt{m} \).

---

### 6. Additional Examples

1. Simplify \( \sqrt{72} \):
   - Factors: \( 1 \times 72, 2 \times 36, 3 \times 24, 4 \times 18, 6 \times 12, 8 \times 9 \).
   - Largest perfect square: 36.
   - Rewrite: \( \sqrt{72} = \sqrt{36 \times 2} = 6\sqrt{2} \).

2. Simplify \( \sqrt{128} \):
   - Factors: \( 1 \times 128, 2 \times 64, 4 \times 32, 8 \times 16 \).
   - Largest perfect square: 64.
   - Rewrite: \( \sqrt{128} = \sqrt{64 \times 2} = 8\sqrt{2} \).

---

### Conclusion

Simplifying radicals is a structured process involving factorization, identification of perfect squares, and reduction. 
By methodically listing factors and selecting the largest perfect square, one ensures accurate and elegant simplifications. 
Remember the symmetry in the process: smaller numbers pair within the radical, and larger numbers emerge outside it.
`
